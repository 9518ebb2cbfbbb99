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

import "context"

type proxyContextKey struct{}

// WithProxy publishes the current proxy reference into the call context.
// The engine writes it only when the configuration enables ExposeProxy,
// since it costs a context allocation per call.
//
// WithProxy 将当前代理引用发布到调用上下文中。
// 引擎仅在配置启用 ExposeProxy 时写入，因为每次调用都要付出一次上下文分配的代价。
func WithProxy(ctx context.Context, proxy interface{}) context.Context {
	return context.WithValue(ctx, proxyContextKey{}, proxy)
}

// ProxyFromContext retrieves the proxy reference published by WithProxy.
// Target code uses it for reentrant self-calls that must re-apply advice.
//
// ProxyFromContext 取回 WithProxy 发布的代理引用。
// 目标代码用它进行需要重新应用增强的可重入自调用。
func ProxyFromContext(ctx context.Context) (interface{}, bool) {
	p := ctx.Value(proxyContextKey{})
	return p, p != nil
}
