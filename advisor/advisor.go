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

// Package advisor provides the standard advisor implementations: a
// pointcut-driven advisor and an introduction advisor, plus the priority
// sort applied before chain construction.
//
// Package advisor 提供标准增强器实现：切点驱动的增强器和引入增强器，
// 以及调用链构建前应用的优先级排序。
package advisor

import (
	"sort"

	"github.com/aopkit/aopkit/api/types"
	"github.com/aopkit/aopkit/pointcut"
)

// Default couples advice with a pointcut. A nil pointcut means the advice
// applies everywhere.
type Default struct {
	advice      interface{}
	pc          types.Pointcut
	order       int
	perInstance bool
}

var _ types.PointcutAdvisor = (*Default)(nil)

// New creates an advisor applying advice where pc matches. Pass nil (or
// pointcut.True()) for advice that applies everywhere.
func New(pc types.Pointcut, advice interface{}) *Default {
	if pc == nil {
		pc = pointcut.True()
	}
	return &Default{advice: advice, pc: pc}
}

// WithOrder sets the execution order, the smaller the value, the higher
// the priority. Advisors with equal order keep declaration order.
// WithOrder 设置执行顺序，值越小优先级越高。顺序相同的增强器保持声明顺序。
func (a *Default) WithOrder(order int) *Default {
	a.order = order
	return a
}

// WithPerInstance marks the advice as stateful per proxy configuration.
func (a *Default) WithPerInstance() *Default {
	a.perInstance = true
	return a
}

func (a *Default) Advice() interface{}      { return a.advice }
func (a *Default) Pointcut() types.Pointcut { return a.pc }
func (a *Default) Order() int               { return a.order }
func (a *Default) PerInstance() bool        { return a.perInstance }

// Introduction attaches new callable methods to a proxy, gated only by a
// class filter. The introduced names must not collide with methods declared
// on the target.
//
// Introduction 为代理附加新的可调用方法，仅受类型过滤器控制。
// 引入的方法名不能与目标对象声明的方法冲突。
type Introduction struct {
	filter  types.ClassFilter
	methods map[string]types.IntroducedMethod
	order   int
}

var _ types.IntroductionAdvisor = (*Introduction)(nil)

// NewIntroduction creates an introduction advisor. A nil filter applies the
// introduction to every target class.
func NewIntroduction(filter types.ClassFilter) *Introduction {
	if filter == nil {
		filter = pointcut.TrueClassFilter
	}
	return &Introduction{filter: filter, methods: make(map[string]types.IntroducedMethod)}
}

// AddMethod registers an introduced method under the given name.
func (a *Introduction) AddMethod(name string, method types.IntroducedMethod) *Introduction {
	a.methods[name] = method
	return a
}

// WithOrder sets the execution order.
func (a *Introduction) WithOrder(order int) *Introduction {
	a.order = order
	return a
}

func (a *Introduction) Advice() interface{}                        { return a.methods }
func (a *Introduction) ClassFilter() types.ClassFilter             { return a.filter }
func (a *Introduction) Methods() map[string]types.IntroducedMethod { return a.methods }
func (a *Introduction) Order() int                                 { return a.order }
func (a *Introduction) PerInstance() bool                          { return false }

// Sort returns a copy of advisors ordered by ascending Order(); advisors
// with equal order keep their declaration order. This is the order chain
// construction preserves exactly.
//
// Sort 返回按 Order() 升序排列的副本；顺序相同的增强器保持声明顺序。
// 这就是调用链构建精确保持的顺序。
func Sort(advisors []types.Advisor) []types.Advisor {
	sorted := make([]types.Advisor, len(advisors))
	copy(sorted, advisors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order() < sorted[j].Order()
	})
	return sorted
}
