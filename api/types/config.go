/*
 * Copyright 2025 The AopKit Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import "time"

// Config defines the shared configuration for proxy factories.
// Config 定义代理工厂的共享配置。
type Config struct {
	// Logger is the logging interface, defaulting to DefaultLogger().
	Logger Logger
	// ScriptMaxExecutionTime is the maximum execution time for script
	// advice, defaulting to 2000 milliseconds.
	ScriptMaxExecutionTime time.Duration
	// Properties are global properties in key-value format, visible to
	// script advice through the global variable.
	// Properties 是键值格式的全局属性，脚本增强可通过 global 变量访问。
	Properties map[string]string
	// Udf is a map of custom Golang functions callable from script advice.
	Udf map[string]interface{}
}

// RegisterUdf registers a custom function callable from script advice.
func (c *Config) RegisterUdf(name string, value interface{}) {
	if c.Udf == nil {
		c.Udf = make(map[string]interface{})
	}
	c.Udf[name] = value
}

// NewConfig creates a new Config with default values and applies the
// provided options.
// NewConfig 创建带默认值的 Config 并应用给定选项。
func NewConfig(opts ...Option) Config {
	c := &Config{
		ScriptMaxExecutionTime: time.Millisecond * 2000,
		Logger:                 DefaultLogger(),
		Properties:             make(map[string]string),
	}
	for _, opt := range opts {
		_ = opt(c)
	}
	return *c
}
