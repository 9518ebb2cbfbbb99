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

package pointcut

import (
	"reflect"

	"github.com/aopkit/aopkit/api/types"
)

// UnionClassFilter matches when either filter matches.
func UnionClassFilter(a, b types.ClassFilter) types.ClassFilter {
	return types.ClassFilterFunc(func(targetClass reflect.Type) bool {
		return a.Matches(targetClass) || b.Matches(targetClass)
	})
}

// IntersectionClassFilter matches only when both filters match.
func IntersectionClassFilter(a, b types.ClassFilter) types.ClassFilter {
	return types.ClassFilterFunc(func(targetClass reflect.Type) bool {
		return a.Matches(targetClass) && b.Matches(targetClass)
	})
}

// composedMatcher combines two method matchers. It is runtime if either
// side is runtime; the per-call check consults each side's runtime check
// only when that side declares one.
// composedMatcher 组合两个方法匹配器。任一侧为动态则整体为动态；
// 按调用检查仅在该侧声明了动态检查时才咨询它。
type composedMatcher struct {
	a, b  types.MethodMatcher
	union bool
}

func (m composedMatcher) Matches(method types.Method, targetClass reflect.Type) bool {
	if m.union {
		return m.a.Matches(method, targetClass) || m.b.Matches(method, targetClass)
	}
	return m.a.Matches(method, targetClass) && m.b.Matches(method, targetClass)
}

func (m composedMatcher) IsRuntime() bool {
	return m.a.IsRuntime() || m.b.IsRuntime()
}

func (m composedMatcher) MatchesArgs(method types.Method, targetClass reflect.Type, args []interface{}) bool {
	af := fullMatch(m.a, method, targetClass, args)
	if m.union {
		return af || fullMatch(m.b, method, targetClass, args)
	}
	return af && fullMatch(m.b, method, targetClass, args)
}

func fullMatch(mm types.MethodMatcher, method types.Method, targetClass reflect.Type, args []interface{}) bool {
	if !mm.Matches(method, targetClass) {
		return false
	}
	if mm.IsRuntime() {
		return mm.MatchesArgs(method, targetClass, args)
	}
	return true
}

// UnionMethodMatcher matches when either matcher matches.
func UnionMethodMatcher(a, b types.MethodMatcher) types.MethodMatcher {
	return composedMatcher{a: a, b: b, union: true}
}

// IntersectionMethodMatcher matches only when both matchers match.
func IntersectionMethodMatcher(a, b types.MethodMatcher) types.MethodMatcher {
	return composedMatcher{a: a, b: b}
}

// pairedMatcher evaluates one whole pointcut (class filter and method
// matcher together), preserving each side's filter/matcher pairing inside
// a union. A union of pointcuts must not mix A's class filter with B's
// method matcher.
// pairedMatcher 对一个完整切点（类型过滤器与方法匹配器一起）求值，
// 在并集中保持每一侧过滤器/匹配器的配对关系。
// 切点并集不能把 A 的类型过滤器与 B 的方法匹配器混用。
type pairedMatcher struct {
	pc types.Pointcut
}

func (m pairedMatcher) Matches(method types.Method, targetClass reflect.Type) bool {
	return m.pc.ClassFilter().Matches(targetClass) && m.pc.MethodMatcher().Matches(method, targetClass)
}

func (m pairedMatcher) IsRuntime() bool {
	return m.pc.MethodMatcher().IsRuntime()
}

func (m pairedMatcher) MatchesArgs(method types.Method, targetClass reflect.Type, args []interface{}) bool {
	return m.pc.ClassFilter().Matches(targetClass) &&
		fullMatch(m.pc.MethodMatcher(), method, targetClass, args)
}

// Union composes two pointcuts: the result matches wherever either of the
// two matches. The match-all sentinel absorbs the union.
//
// Union 组合两个切点：任一切点匹配处结果即匹配。全匹配哨兵吸收并集。
func Union(a, b types.Pointcut) types.Pointcut {
	if IsTrue(a) || IsTrue(b) {
		return True()
	}
	return Default{
		Filter:  UnionClassFilter(a.ClassFilter(), b.ClassFilter()),
		Matcher: UnionMethodMatcher(pairedMatcher{pc: a}, pairedMatcher{pc: b}),
	}
}

// Intersection composes two pointcuts: the result matches only where both
// match. The match-all sentinel is the identity.
//
// Intersection 组合两个切点：仅在两者都匹配处结果才匹配。全匹配哨兵是单位元。
func Intersection(a, b types.Pointcut) types.Pointcut {
	if IsTrue(a) {
		if b == nil {
			return True()
		}
		return b
	}
	if IsTrue(b) {
		return a
	}
	return Default{
		Filter:  IntersectionClassFilter(a.ClassFilter(), b.ClassFilter()),
		Matcher: IntersectionMethodMatcher(a.MethodMatcher(), b.MethodMatcher()),
	}
}
