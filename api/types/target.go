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

// TargetSource abstracts how and when the real target instance behind a
// proxy is obtained: a fixed singleton, lazily created on first use, checked
// out of a bounded pool, bound to the calling scope, or created fresh per
// call.
//
// Lifecycle contract: GetTarget may allocate, look up, or return a cached
// instance; ReleaseTarget must be called symmetrically for every successful
// GetTarget when the source is non-static, and is a no-op for static sources.
//
// TargetSource 抽象了代理背后真实目标实例的获取方式与时机：固定单例、首次使用时惰性创建、
// 从有界池中取出、绑定到调用作用域，或每次调用新建。
// 生命周期契约：GetTarget 可以分配、查找或返回缓存实例；对于非静态来源，
// 每次成功的 GetTarget 都必须对称地调用 ReleaseTarget；静态来源的 ReleaseTarget 是空操作。
type TargetSource interface {
	// TargetClass returns the class of objects this source supplies, or nil
	// when the class cannot be known before the first target is produced.
	TargetClass() reflect.Type
	// IsStatic reports whether GetTarget always returns the same instance.
	// Static sources never need ReleaseTarget calls.
	IsStatic() bool
	// GetTarget returns the instance the current call should execute on.
	// The context bounds blocking acquisition (pool checkout) and carries
	// the scope for scope-bound sources.
	GetTarget(ctx context.Context) (interface{}, error)
	// ReleaseTarget returns an instance obtained from GetTarget.
	ReleaseTarget(target interface{}) error
}
