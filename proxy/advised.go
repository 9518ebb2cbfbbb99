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

// Package proxy produces callable facades: it orchestrates advisors, the
// adapter registry, the target source, and the chain builder into a proxy
// that forwards every call through the applicable interceptor chain.
//
// Package proxy 生成可调用的门面：它将增强器、适配器注册表、目标来源和调用链构建器
// 编排为一个代理，把每次调用转发经过适用的拦截器链。
package proxy

import (
	"errors"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/aopkit/aopkit/adapter"
	"github.com/aopkit/aopkit/advisor"
	"github.com/aopkit/aopkit/api/types"
	"github.com/aopkit/aopkit/target"
)

var (
	// ErrFrozen indicates a mutation attempt on a frozen configuration.
	// ErrFrozen 表示对已冻结配置的变更尝试。
	ErrFrozen = errors.New("advised configuration is frozen")
	// ErrNoTarget indicates proxy creation without a target or target source.
	ErrNoTarget = errors.New("neither target nor target source configured")
	// ErrMethodNotFound indicates a call to a method the proxy surface does
	// not expose.
	ErrMethodNotFound = errors.New("method not found on proxy surface")
	// ErrAdvisorNotFound indicates removal of an advisor that is not part
	// of the configuration.
	ErrAdvisorNotFound = errors.New("advisor not registered")
)

// Advised owns one proxy's configuration: the ordered advisor list, the
// target source, and the frozen/expose flags. Every mutation is done under
// a lock and publishes a fresh immutable snapshot; readers in flight keep
// the snapshot they started with and never observe a half-updated list.
//
// Advised 拥有一个代理的配置：有序增强器列表、目标来源以及 frozen/expose 标志。
// 每次变更都在锁内完成，并发布一个全新的不可变快照；
// 进行中的读取方保留其开始时的快照，绝不会观察到更新到一半的列表。
type Advised struct {
	mu       sync.Mutex
	config   types.Config
	registry *adapter.Registry

	targetSource types.TargetSource
	advisors     []types.Advisor
	frozen       bool
	exposeProxy  bool
	cacheChains  bool
	built        bool

	// snapshotPtr provides lock-free atomic access to the current immutable
	// snapshot for the invocation hot path.
	// snapshotPtr 为调用热路径提供对当前不可变快照的无锁原子访问。
	snapshotPtr unsafe.Pointer
}

// NewAdvised creates an empty mutable configuration.
func NewAdvised(config types.Config) *Advised {
	config.Logger = types.NewLogger(config.Logger)
	return &Advised{
		config:      config,
		registry:    adapter.NewRegistry(),
		cacheChains: true,
	}
}

// Config returns the shared configuration.
func (a *Advised) Config() types.Config { return a.config }

// Registry returns the advisor adapter registry, for registering external
// advice adapters before proxy creation.
func (a *Advised) Registry() *adapter.Registry { return a.registry }

// SetTarget wraps target in a fixed singleton target source.
func (a *Advised) SetTarget(t interface{}) error {
	return a.SetTargetSource(target.NewSingleton(t))
}

// SetTargetSource replaces the target source. Fails once frozen.
func (a *Advised) SetTargetSource(ts types.TargetSource) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.frozen {
		return ErrFrozen
	}
	old := a.targetSource
	a.targetSource = ts
	if err := a.rebuildLocked(); err != nil {
		a.targetSource = old
		return err
	}
	return nil
}

// TargetSource returns the current target source.
func (a *Advised) TargetSource() types.TargetSource {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.targetSource
}

// SetExposeProxy controls whether each call publishes the proxy reference
// into the call context (types.ProxyFromContext). Disabled by default since
// it costs a context write per call.
// SetExposeProxy 控制每次调用是否把代理引用发布到调用上下文中。
// 默认关闭，因为每次调用要付出一次上下文写入的代价。
func (a *Advised) SetExposeProxy(expose bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.frozen {
		return ErrFrozen
	}
	a.exposeProxy = expose
	return a.rebuildLocked()
}

// SetChainCaching disables or re-enables the per-method chain cache.
// Disable it for prototype targets whose class varies per instance.
func (a *Advised) SetChainCaching(enabled bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.frozen {
		return ErrFrozen
	}
	a.cacheChains = enabled
	return a.rebuildLocked()
}

// Freeze makes the advisor list and target source immutable. Any further
// mutation attempt fails with ErrFrozen. Freezing is not reversible.
// Freeze 使增强器列表与目标来源不可变。之后的任何变更尝试都以 ErrFrozen 失败。冻结不可逆。
func (a *Advised) Freeze() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frozen = true
}

// IsFrozen reports whether the configuration is frozen.
func (a *Advised) IsFrozen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frozen
}

// AddAdvice normalizes a bare advice object through the adapter registry
// and appends it as an apply-everywhere advisor. An object of unknown type
// fails with adapter.ErrUnknownAdviceType.
func (a *Advised) AddAdvice(advice interface{}) error {
	adv, err := a.registry.Wrap(advice)
	if err != nil {
		return err
	}
	return a.AddAdvisor(adv)
}

// AddAdvisor appends advisors in declaration order. The mutation is
// rejected as a whole when any advisor's advice cannot be normalized.
// AddAdvisor 按声明顺序追加增强器。任一增强器的增强无法归一化时，整个变更被拒绝。
func (a *Advised) AddAdvisor(advisors ...types.Advisor) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.frozen {
		return ErrFrozen
	}
	old := a.advisors
	a.advisors = append(append([]types.Advisor{}, a.advisors...), advisors...)
	if err := a.rebuildLocked(); err != nil {
		a.advisors = old
		return err
	}
	return nil
}

// RemoveAdvisor removes an advisor by identity.
func (a *Advised) RemoveAdvisor(adv types.Advisor) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.frozen {
		return ErrFrozen
	}
	for i, candidate := range a.advisors {
		if candidate == adv {
			old := a.advisors
			a.advisors = append(append([]types.Advisor{}, a.advisors[:i]...), a.advisors[i+1:]...)
			if err := a.rebuildLocked(); err != nil {
				a.advisors = old
				return err
			}
			return nil
		}
	}
	return ErrAdvisorNotFound
}

// ReplaceAdvisors swaps the whole advisor list.
func (a *Advised) ReplaceAdvisors(advisors ...types.Advisor) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.frozen {
		return ErrFrozen
	}
	old := a.advisors
	a.advisors = append([]types.Advisor{}, advisors...)
	if err := a.rebuildLocked(); err != nil {
		a.advisors = old
		return err
	}
	return nil
}

// Advisors returns a copy of the current advisor list in declaration order.
func (a *Advised) Advisors() []types.Advisor {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]types.Advisor{}, a.advisors...)
}

// snapshot returns the current published snapshot, nil before the first
// build.
func (a *Advised) snapshot() *snapshot {
	return (*snapshot)(atomic.LoadPointer(&a.snapshotPtr))
}

// rebuildLocked renormalizes advice, rebuilds the chain state, and
// atomically publishes the new snapshot. Callers hold a.mu. Before the
// first build (proxy creation) mutations accumulate without publishing.
//
// rebuildLocked 重新归一化增强、重建链状态并原子发布新快照。调用方持有 a.mu。
// 首次构建（创建代理）之前，变更只累积而不发布。
func (a *Advised) rebuildLocked() error {
	if !a.built {
		return nil
	}
	s, err := a.buildSnapshotLocked()
	if err != nil {
		return err
	}
	atomic.StorePointer(&a.snapshotPtr, unsafe.Pointer(s))
	return nil
}

// buildSnapshotLocked materializes the immutable view of the current
// configuration: advisors sorted by priority, advice normalized into
// interceptors, introductions collected, chain cache reset.
func (a *Advised) buildSnapshotLocked() (*snapshot, error) {
	if a.targetSource == nil {
		return nil, ErrNoTarget
	}
	s := &snapshot{
		targetSource: a.targetSource,
		targetClass:  a.targetSource.TargetClass(),
		exposeProxy:  a.exposeProxy,
	}
	for _, adv := range advisor.Sort(a.advisors) {
		if ia, ok := adv.(types.IntroductionAdvisor); ok {
			s.introductions = append(s.introductions, introEntry{
				filter:  ia.ClassFilter(),
				methods: ia.Methods(),
			})
			continue
		}
		interceptors, err := a.registry.Interceptors(adv)
		if err != nil {
			return nil, err
		}
		var pc types.Pointcut
		if pa, ok := adv.(types.PointcutAdvisor); ok {
			pc = pa.Pointcut()
		}
		s.entries = append(s.entries, chainEntry{interceptors: interceptors, pointcut: pc})
	}
	if s.targetClass != nil {
		s.methods = types.MethodsOf(s.targetClass)
		s.introduced = s.introducedMethods(s.targetClass)
	}
	if a.cacheChains {
		s.cache = &sync.Map{}
	}
	return s, nil
}
