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

import "reflect"

// ClassFilter decides whether a target class is eligible for a piece of
// advice. Implementations must be reentrant and side-effect free.
//
// ClassFilter 判断目标类型是否适用某个增强。实现必须可重入且无副作用。
type ClassFilter interface {
	Matches(targetClass reflect.Type) bool
}

// ClassFilterFunc adapts a plain predicate to the ClassFilter interface.
type ClassFilterFunc func(targetClass reflect.Type) bool

func (f ClassFilterFunc) Matches(targetClass reflect.Type) bool {
	return f(targetClass)
}

// MethodMatcher decides whether a method is eligible for a piece of advice.
//
// A static matcher (IsRuntime()==false) is evaluated once per method when
// the chain is built and the answer is cached. A dynamic matcher
// (IsRuntime()==true) additionally has MatchesArgs evaluated on every call,
// because its answer depends on the actual argument values.
//
// MethodMatcher 判断方法是否适用某个增强。
// 静态匹配器（IsRuntime()==false）在构建调用链时对每个方法求值一次并缓存结果；
// 动态匹配器（IsRuntime()==true）还会在每次调用时对 MatchesArgs 求值，
// 因为其结果取决于实际参数值。
type MethodMatcher interface {
	// Matches performs the static check for the given method on the class.
	Matches(method Method, targetClass reflect.Type) bool
	// IsRuntime reports whether MatchesArgs must be consulted per call.
	IsRuntime() bool
	// MatchesArgs performs the per-call check. Only called when IsRuntime()
	// is true and the static Matches already returned true.
	MatchesArgs(method Method, targetClass reflect.Type, args []interface{}) bool
}

// Pointcut pairs a ClassFilter with a MethodMatcher, selecting where advice
// applies: matches(method, class) iff the filter matches the class and the
// matcher matches the method.
//
// Pointcut 将 ClassFilter 与 MethodMatcher 配对，选择增强的适用范围：
// 当且仅当过滤器匹配类型且匹配器匹配方法时，切点匹配。
type Pointcut interface {
	ClassFilter() ClassFilter
	MethodMatcher() MethodMatcher
}
