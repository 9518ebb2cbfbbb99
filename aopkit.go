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

// Package aopkit is the facade over the interception engine: it wraps a
// plain target object in a dynamically assembled substitute that forwards
// every call through a chain of advice (before, after-returning, throws,
// around) selected by pointcuts.
//
// The quickest path from a target to a proxy:
//
//	proxy, err := aopkit.NewProxy(&OrderService{},
//		advice.NewDebug(nil),
//		advisor.New(pointcut.NewNameMatch("Save*"), audit),
//	)
//	result, err := proxy.Call(ctx, "Save", order)
//
// Package aopkit 是拦截引擎的门面：将普通目标对象包装为动态装配的替身，
// 每次调用都经过由切点选择的增强链（前置、返回后、错误、环绕）转发。
package aopkit

import (
	"github.com/aopkit/aopkit/api/types"
	"github.com/aopkit/aopkit/proxy"
)

// NewConfig creates an engine configuration with defaults, applying the
// given options.
func NewConfig(opts ...types.Option) types.Config {
	return types.NewConfig(opts...)
}

// NewProxy wraps target in a proxy whose chain is built from the given
// objects: advisors are taken as-is, bare advice is normalized through the
// adapter registry with the apply-everywhere pointcut. Unknown advice types
// fail here, at configuration time.
//
// NewProxy 将目标包装为代理，其调用链由给定对象构建：增强器按原样使用，
// 裸增强通过适配器注册表配上全匹配切点归一化。未知增强类型在此处（配置期）失败。
func NewProxy(target interface{}, adviceOrAdvisors ...interface{}) (*proxy.Proxy, error) {
	return NewProxyWithConfig(types.NewConfig(), target, adviceOrAdvisors...)
}

// NewProxyWithConfig is NewProxy with an explicit configuration.
func NewProxyWithConfig(config types.Config, target interface{}, adviceOrAdvisors ...interface{}) (*proxy.Proxy, error) {
	advised := proxy.NewAdvised(config)
	if err := advised.SetTarget(target); err != nil {
		return nil, err
	}
	for _, obj := range adviceOrAdvisors {
		if err := advised.AddAdvice(obj); err != nil {
			return nil, err
		}
	}
	return proxy.New(advised)
}

// NewProxyFromSource is NewProxy over an explicit target source instead of
// a fixed singleton target.
func NewProxyFromSource(config types.Config, source types.TargetSource, adviceOrAdvisors ...interface{}) (*proxy.Proxy, error) {
	advised := proxy.NewAdvised(config)
	if err := advised.SetTargetSource(source); err != nil {
		return nil, err
	}
	for _, obj := range adviceOrAdvisors {
		if err := advised.AddAdvice(obj); err != nil {
			return nil, err
		}
	}
	return proxy.New(advised)
}
