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

// Package pointcut provides the predicates deciding where advice applies:
// class filters, static and dynamic method matchers, match-all sentinels,
// union/intersection composition, name matching, and expression matching.
//
// Package pointcut 提供决定增强适用范围的谓词：类型过滤器、静态与动态方法匹配器、
// 全匹配哨兵、并集/交集组合、名称匹配和表达式匹配。
package pointcut

import (
	"reflect"

	"github.com/aopkit/aopkit/api/types"
)

// trueClassFilter matches every class.
type trueClassFilter struct{}

func (trueClassFilter) Matches(reflect.Type) bool { return true }

// trueMethodMatcher statically matches every method.
type trueMethodMatcher struct{}

func (trueMethodMatcher) Matches(types.Method, reflect.Type) bool { return true }
func (trueMethodMatcher) IsRuntime() bool                         { return false }
func (trueMethodMatcher) MatchesArgs(types.Method, reflect.Type, []interface{}) bool {
	return true
}

// truePointcut is the match-all sentinel.
type truePointcut struct{}

func (truePointcut) ClassFilter() types.ClassFilter     { return TrueClassFilter }
func (truePointcut) MethodMatcher() types.MethodMatcher { return TrueMethodMatcher }

var (
	// TrueClassFilter is the canonical class filter matching every class.
	TrueClassFilter types.ClassFilter = trueClassFilter{}
	// TrueMethodMatcher is the canonical matcher matching every method.
	TrueMethodMatcher types.MethodMatcher = trueMethodMatcher{}
	truePointcutInstance                  = truePointcut{}
)

// True returns the match-all pointcut sentinel. Chain construction
// recognizes it and short-circuits evaluation without walking declared
// methods.
//
// True 返回全匹配切点哨兵。调用链构建会识别它并短路求值，而不遍历声明的方法。
func True() types.Pointcut {
	return truePointcutInstance
}

// IsTrue reports whether pc is the match-all sentinel. A nil pointcut is
// treated as match-all.
func IsTrue(pc types.Pointcut) bool {
	if pc == nil {
		return true
	}
	_, ok := pc.(truePointcut)
	return ok
}

// Static wraps a method-name predicate into a static method matcher.
// The predicate is evaluated once per method at chain-build time.
type Static struct {
	Fn func(method types.Method, targetClass reflect.Type) bool
}

func (s Static) Matches(method types.Method, targetClass reflect.Type) bool {
	return s.Fn(method, targetClass)
}
func (s Static) IsRuntime() bool { return false }
func (s Static) MatchesArgs(method types.Method, targetClass reflect.Type, _ []interface{}) bool {
	return s.Fn(method, targetClass)
}

// Dynamic wraps per-call predicates into a dynamic method matcher. The
// static predicate prunes methods at chain-build time; the args predicate
// is re-evaluated on every call with that call's actual arguments.
//
// Dynamic 将按调用求值的谓词包装为动态方法匹配器。静态谓词在构建调用链时裁剪方法；
// 参数谓词在每次调用时用该次调用的实际参数重新求值。
type Dynamic struct {
	// Fn is the optional static pre-filter; nil matches all methods.
	Fn func(method types.Method, targetClass reflect.Type) bool
	// ArgsFn is the per-call check.
	ArgsFn func(method types.Method, targetClass reflect.Type, args []interface{}) bool
}

func (d Dynamic) Matches(method types.Method, targetClass reflect.Type) bool {
	if d.Fn == nil {
		return true
	}
	return d.Fn(method, targetClass)
}
func (d Dynamic) IsRuntime() bool { return true }
func (d Dynamic) MatchesArgs(method types.Method, targetClass reflect.Type, args []interface{}) bool {
	return d.ArgsFn(method, targetClass, args)
}

// Default is a plain pointcut pairing a class filter with a method matcher.
// Nil fields fall back to the match-all sentinels.
type Default struct {
	Filter  types.ClassFilter
	Matcher types.MethodMatcher
}

func (p Default) ClassFilter() types.ClassFilter {
	if p.Filter == nil {
		return TrueClassFilter
	}
	return p.Filter
}

func (p Default) MethodMatcher() types.MethodMatcher {
	if p.Matcher == nil {
		return TrueMethodMatcher
	}
	return p.Matcher
}

// New builds a pointcut from a class filter and a method matcher, either of
// which may be nil to match everything on that axis.
func New(filter types.ClassFilter, matcher types.MethodMatcher) types.Pointcut {
	return Default{Filter: filter, Matcher: matcher}
}

// ForClass builds a pointcut restricting advice to targets assignable to
// the given class, matching every method on it.
// ForClass 构建一个切点，将增强限制到可赋值给给定类型的目标，并匹配其所有方法。
func ForClass(class reflect.Type) types.Pointcut {
	return Default{Filter: ClassFilterFor(class)}
}

// ClassFilterFor returns a filter accepting target classes assignable to
// class. When class is an interface the filter accepts implementations.
func ClassFilterFor(class reflect.Type) types.ClassFilter {
	return types.ClassFilterFunc(func(targetClass reflect.Type) bool {
		if targetClass == nil {
			return false
		}
		if targetClass == class {
			return true
		}
		if class.Kind() == reflect.Interface {
			return targetClass.Implements(class)
		}
		return targetClass.AssignableTo(class)
	})
}
