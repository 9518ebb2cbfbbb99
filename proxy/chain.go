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

package proxy

import (
	"reflect"
	"sync"

	"github.com/aopkit/aopkit/api/types"
	"github.com/aopkit/aopkit/pointcut"
)

// chainEntry is one normalized non-introduction advisor: its interceptors
// plus the pointcut gating them. A nil pointcut applies everywhere.
type chainEntry struct {
	interceptors []types.Interceptor
	pointcut     types.Pointcut
}

// introEntry is one introduction advisor: its class filter and the methods
// it contributes to matching target classes.
type introEntry struct {
	filter  types.ClassFilter
	methods map[string]types.IntroducedMethod
}

// snapshot is the immutable view of one Advised configuration version.
// All invocation-path reads go through a snapshot; mutations publish a new
// one. The chain cache lives inside the snapshot so every configuration
// change implicitly invalidates it.
//
// snapshot 是 Advised 配置某个版本的不可变视图。调用路径的所有读取都经过快照；
// 变更会发布新快照。链缓存位于快照内部，因此每次配置变更都隐式使其失效。
type snapshot struct {
	entries       []chainEntry
	introductions []introEntry
	targetSource  types.TargetSource
	// targetClass is nil when the source cannot know its class up front
	// (prototype factories); method lookup then happens per call.
	targetClass reflect.Type
	methods     map[string]types.Method
	introduced  map[string]types.IntroducedMethod
	exposeProxy bool
	// cache maps "class#method" to the built interceptor chain; nil when
	// chain caching is disabled.
	cache *sync.Map
}

// chainFor resolves the interceptor chain applicable to one method call,
// consulting the per-snapshot cache first. The empty chain is a valid fast
// path: the call proceeds directly to the target.
//
// chainFor 解析适用于一次方法调用的拦截器链，优先查询快照内缓存。
// 空链是合法的快速路径：调用直接到达目标。
func (s *snapshot) chainFor(method types.Method, targetClass reflect.Type) []types.Interceptor {
	if s.cache == nil {
		return s.buildChain(method, targetClass)
	}
	key := chainKey(method, targetClass)
	if cached, ok := s.cache.Load(key); ok {
		return cached.([]types.Interceptor)
	}
	chain := s.buildChain(method, targetClass)
	s.cache.Store(key, chain)
	return chain
}

func chainKey(method types.Method, targetClass reflect.Type) string {
	if targetClass == nil {
		return method.Name
	}
	return targetClass.String() + "#" + method.Name
}

// buildChain walks the normalized advisor entries in priority order and
// concatenates the surviving interceptors:
//   - the match-all sentinel short-circuits without evaluating matchers;
//   - a static pointcut mismatch excludes the entry for this method;
//   - a dynamic matcher keeps the entry but defers the argument check to
//     invocation time through a per-call wrapper.
//
// buildChain 按优先级顺序遍历归一化的增强器条目并拼接存活的拦截器：
// 全匹配哨兵不经求值直接短路；静态切点不匹配则该条目对此方法被排除；
// 动态匹配器保留条目，但通过按调用包装器把参数检查推迟到调用时。
func (s *snapshot) buildChain(method types.Method, targetClass reflect.Type) []types.Interceptor {
	var chain []types.Interceptor
	for _, e := range s.entries {
		if pointcut.IsTrue(e.pointcut) {
			chain = append(chain, e.interceptors...)
			continue
		}
		if !e.pointcut.ClassFilter().Matches(targetClass) {
			continue
		}
		mm := e.pointcut.MethodMatcher()
		if !mm.Matches(method, targetClass) {
			continue
		}
		if mm.IsRuntime() {
			for _, ic := range e.interceptors {
				chain = append(chain, &dynamicInterceptor{
					matcher:     mm,
					targetClass: targetClass,
					interceptor: ic,
				})
			}
		} else {
			chain = append(chain, e.interceptors...)
		}
	}
	return chain
}

// introducedMethods collects the introduced methods whose class filter
// matches the target class, earlier advisors winning name collisions.
func (s *snapshot) introducedMethods(targetClass reflect.Type) map[string]types.IntroducedMethod {
	if s.introduced != nil {
		return s.introduced
	}
	var methods map[string]types.IntroducedMethod
	for _, intro := range s.introductions {
		if !intro.filter.Matches(targetClass) {
			continue
		}
		if methods == nil {
			methods = make(map[string]types.IntroducedMethod)
		}
		for name, m := range intro.methods {
			if _, exists := methods[name]; !exists {
				methods[name] = m
			}
		}
	}
	return methods
}

// dynamicInterceptor defers a runtime method-matcher check to invocation
// time. A per-call mismatch skips the wrapped interceptor for that call
// only; chain membership is unaffected.
//
// dynamicInterceptor 将动态方法匹配器的检查推迟到调用时。
// 某次调用不匹配仅使该次调用跳过被包装的拦截器；链成员资格不受影响。
type dynamicInterceptor struct {
	matcher     types.MethodMatcher
	targetClass reflect.Type
	interceptor types.Interceptor
}

func (d *dynamicInterceptor) Invoke(inv types.Invocation) ([]interface{}, error) {
	if d.matcher.MatchesArgs(inv.Method(), d.targetClass, inv.Arguments()) {
		return d.interceptor.Invoke(inv)
	}
	return inv.Proceed()
}
