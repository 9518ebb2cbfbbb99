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

// Option modifies a Config.
type Option func(*Config) error

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithScriptMaxExecutionTime sets the script advice execution time limit.
func WithScriptMaxExecutionTime(d time.Duration) Option {
	return func(c *Config) error {
		c.ScriptMaxExecutionTime = d
		return nil
	}
}

// WithProperties sets the global key-value properties.
func WithProperties(properties map[string]string) Option {
	return func(c *Config) error {
		c.Properties = properties
		return nil
	}
}
