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

// Package adapter normalizes heterogeneous advice objects (before advice,
// after-returning advice, throws advice, raw interceptors) into the single
// interceptor shape the chain executor understands. The registry tries its
// adapters in registration order; the first adapter whose SupportsAdvice
// returns true wins.
//
// Package adapter 将异构的增强对象（前置增强、返回后增强、错误增强、原生拦截器）
// 归一化为链执行器理解的统一拦截器形态。注册表按注册顺序尝试适配器；
// 第一个 SupportsAdvice 返回 true 的适配器胜出。
package adapter

import (
	"errors"
	"fmt"
	"sync"

	"github.com/aopkit/aopkit/advisor"
	"github.com/aopkit/aopkit/api/types"
)

var (
	// ErrUnknownAdviceType indicates an object that is neither an advisor,
	// an interceptor, nor advice any registered adapter supports. This is a
	// configuration error, never recovered automatically.
	// ErrUnknownAdviceType 表示一个既不是增强器、不是拦截器、也没有任何已注册适配器
	// 支持的对象。这是配置错误，绝不会自动恢复。
	ErrUnknownAdviceType = errors.New("advice object is of unknown type")
)

// AdvisorAdapter converts one advice authoring shape into an interceptor.
type AdvisorAdapter interface {
	// SupportsAdvice reports whether this adapter understands the advice.
	SupportsAdvice(advice interface{}) bool
	// GetInterceptor wraps the advisor's advice into an interceptor.
	// Only called after SupportsAdvice returned true for the advice.
	GetInterceptor(adv types.Advisor) (types.Interceptor, error)
}

// Registry holds the built-in adapters plus any externally registered ones.
type Registry struct {
	mu       sync.RWMutex
	adapters []AdvisorAdapter
}

// NewRegistry creates a registry preloaded with the built-in adapters for
// before advice, after-returning advice, and throws advice.
func NewRegistry() *Registry {
	return &Registry{
		adapters: []AdvisorAdapter{
			methodBeforeAdapter{},
			afterReturningAdapter{},
			throwsAdapter{},
		},
	}
}

// Register appends an externally supplied adapter. Adapters are tried in
// registration order.
func (r *Registry) Register(a AdvisorAdapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters = append(r.adapters, a)
}

// Wrap normalizes an arbitrary object into an advisor:
//   - an object already satisfying the Advisor contract is returned unchanged;
//   - a raw interceptor or adaptable advice is paired with the
//     apply-everywhere pointcut;
//   - anything else fails with ErrUnknownAdviceType.
//
// Wrap 将任意对象归一化为增强器：已满足 Advisor 契约的对象原样返回；
// 原生拦截器或可适配的增强与全匹配切点配对；其余情况以 ErrUnknownAdviceType 失败。
func (r *Registry) Wrap(object interface{}) (types.Advisor, error) {
	if adv, ok := object.(types.Advisor); ok {
		return adv, nil
	}
	if _, ok := object.(types.Interceptor); ok {
		return advisor.New(nil, object), nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.adapters {
		if a.SupportsAdvice(object) {
			return advisor.New(nil, object), nil
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownAdviceType, object)
}

// Interceptors produces the normalized interceptors for an advisor's
// advice. A raw interceptor passes through unchanged; otherwise every
// supporting adapter contributes one interceptor.
//
// Interceptors 为增强器的增强生成归一化拦截器。原生拦截器原样通过；
// 否则每个支持该增强的适配器贡献一个拦截器。
func (r *Registry) Interceptors(adv types.Advisor) ([]types.Interceptor, error) {
	advice := adv.Advice()
	var interceptors []types.Interceptor
	if ic, ok := advice.(types.Interceptor); ok {
		interceptors = append(interceptors, ic)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.adapters {
		if a.SupportsAdvice(advice) {
			ic, err := a.GetInterceptor(adv)
			if err != nil {
				return nil, err
			}
			interceptors = append(interceptors, ic)
		}
	}
	if len(interceptors) == 0 {
		return nil, fmt.Errorf("%w: %T", ErrUnknownAdviceType, advice)
	}
	return interceptors, nil
}
