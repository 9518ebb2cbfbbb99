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

// Advisor couples a piece of advice with the information needed to decide
// where it applies. Advisors execute in the order produced by chain
// construction: ascending Order(), declaration order within equal orders.
//
// Advisor 将一段增强与决定其适用范围所需的信息结合在一起。
// 增强器按调用链构建产生的顺序执行：Order() 升序，相同 Order 保持声明顺序。
type Advisor interface {
	// Advice returns the advice object. It must be an Interceptor, a
	// MethodBeforeAdvice, an AfterReturningAdvice, a ThrowsAdvice, or a
	// type some registered adapter supports.
	Advice() interface{}
	// Order returns the execution order, the smaller the value, the higher
	// the priority.
	// Order 返回执行顺序，值越小，优先级越高。
	Order() int
	// PerInstance reports whether the advice carries per-proxy state and
	// must not be shared between proxy configurations.
	PerInstance() bool
}

// PointcutAdvisor applies its advice only where the pointcut matches.
// A nil Pointcut means the advice applies everywhere.
//
// PointcutAdvisor 仅在切点匹配处应用其增强。Pointcut 为 nil 表示增强适用于所有位置。
type PointcutAdvisor interface {
	Advisor
	Pointcut() Pointcut
}

// IntroducedMethod is a method contributed to the proxy surface by an
// introduction advisor. It receives the call context and arguments.
type IntroducedMethod func(ctx context.Context, args []interface{}) ([]interface{}, error)

// IntroductionAdvisor attaches new capability surface to a proxy rather
// than wrapping an existing method. Only the class filter gates
// applicability; method matching is meaningless for introductions.
//
// IntroductionAdvisor 为代理附加新的能力表面，而不是包装已有方法。
// 仅类型过滤器控制其适用性；方法匹配对引入没有意义。
type IntroductionAdvisor interface {
	Advisor
	// ClassFilter restricts which target classes receive the introduction.
	ClassFilter() ClassFilter
	// Methods returns the introduced methods keyed by name. Introduced
	// names must not collide with the target's declared methods.
	Methods() map[string]IntroducedMethod
}
