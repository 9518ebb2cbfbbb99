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

import (
	"context"
	"reflect"
)

// The interfaces in this file describe the advice shapes the interception
// engine understands. Advice is a unit of cross-cutting behavior (logging,
// security, metrics, retries) that runs before, after, or around the real
// method call without modifying the target's logic.
//
// 本文件中的接口描述了拦截引擎所理解的增强（advice）形态。增强是一个横切行为单元
// （日志、安全、指标、重试），在真实方法调用之前、之后或环绕执行，而无需修改目标对象的逻辑。

// MethodBeforeAdvice is advice that executes before the target method.
// Returning a non-nil error aborts the invocation; the target is not called
// and the error propagates to the caller.
//
// MethodBeforeAdvice 是在目标方法之前执行的增强。
// 返回非 nil 错误会中止本次调用：目标方法不会被调用，错误传播给调用方。
type MethodBeforeAdvice interface {
	Before(ctx context.Context, method Method, args []interface{}, target interface{}) error
}

// AfterReturningAdvice is advice that executes after the target method
// returns successfully. It observes the result but cannot replace it;
// returning a non-nil error turns the successful call into a failed one.
//
// AfterReturningAdvice 是在目标方法成功返回之后执行的增强。
// 它可以观察结果但不能替换结果；返回非 nil 错误会把成功的调用变为失败。
type AfterReturningAdvice interface {
	AfterReturning(ctx context.Context, result []interface{}, method Method, args []interface{}, target interface{}) error
}

// ErrorHandlerFunc observes an error raised by the target or by a later
// interceptor. Handlers observe and react; they never replace the error.
//
// ErrorHandlerFunc 观察目标对象或后续拦截器抛出的错误。处理器只观察和响应，从不替换错误。
type ErrorHandlerFunc func(ctx context.Context, method Method, args []interface{}, target interface{}, err error)

// ErrorHandlerEntry is one registration in a ThrowsAdvice handler table.
// Exactly one of Type or Sentinel is set:
//   - Type handles errors whose dynamic type (at any level of the wrap
//     chain) equals Type. 处理动态类型（展开链任意层级）等于 Type 的错误。
//   - Sentinel handles errors matching errors.Is(err, Sentinel).
//     处理 errors.Is(err, Sentinel) 匹配的错误。
type ErrorHandlerEntry struct {
	Type     reflect.Type
	Sentinel error
	Handle   ErrorHandlerFunc
}

// ThrowsAdvice is advice that reacts to errors. Its handler table is built
// once at construction time; dispatch walks the thrown error's unwrap chain
// from the concrete value outward and invokes the most specific matching
// handler, then the original error propagates unchanged.
//
// ThrowsAdvice 是对错误做出响应的增强。其处理器表在构造时一次性建立；
// 分发时沿抛出错误的展开链从具体值向外查找最具体的匹配处理器并调用，
// 之后原始错误原样向上传播。
type ThrowsAdvice interface {
	ErrorHandlers() []ErrorHandlerEntry
}

// Interceptor is the normalized, chainable form of advice. An interceptor
// must either call inv.Proceed() exactly once, synchronously returning its
// result, or short-circuit by returning (or failing) without proceeding.
//
// Interceptor 是增强的归一化、可链式执行形态。拦截器要么恰好调用一次 inv.Proceed()
// 并同步返回其结果，要么不调用 Proceed 直接返回（或失败）以短路调用链。
type Interceptor interface {
	Invoke(inv Invocation) ([]interface{}, error)
}

// InterceptorFunc adapts a plain function to the Interceptor interface.
type InterceptorFunc func(inv Invocation) ([]interface{}, error)

func (f InterceptorFunc) Invoke(inv Invocation) ([]interface{}, error) {
	return f(inv)
}

// Invocation is the call context handed to each interceptor: the method
// being invoked, its arguments, the target, and a cursor over the remaining
// chain. Proceed advances the cursor; the terminal step performs the real
// call on the target object.
//
// Invocation 是传递给每个拦截器的调用上下文：被调用的方法、参数、目标对象，
// 以及剩余调用链上的游标。Proceed 推进游标；终点步骤在目标对象上执行真实调用。
type Invocation interface {
	// Context returns the caller-supplied context for this call.
	Context() context.Context
	// ID returns the unique id of this invocation.
	ID() string
	// Method returns the method being invoked.
	Method() Method
	// Arguments returns the current argument list. Interceptors may inspect it.
	Arguments() []interface{}
	// SetArguments replaces the argument list seen by later interceptors and
	// by the target call.
	SetArguments(args []interface{})
	// Target returns the object the terminal call executes on. It may be nil
	// for pure-introduction proxies.
	Target() interface{}
	// Proxy returns the facade this call came through.
	Proxy() interface{}
	// Proceed runs the rest of the chain and ultimately the target method.
	Proceed() ([]interface{}, error)
}
