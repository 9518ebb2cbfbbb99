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
	"context"
	"fmt"
	"reflect"
	"sync/atomic"
	"unsafe"

	"github.com/aopkit/aopkit/api/types"
	"github.com/aopkit/aopkit/api/types/metrics"
)

// Proxy is the callable facade produced from an Advised configuration.
// Its surface is the target class's exported methods plus any introduced
// methods; every call forwards through the applicable interceptor chain and
// terminates on the object the target source currently supplies.
//
// Proxy 是从 Advised 配置生成的可调用门面。其表面为目标类型的导出方法加上引入方法；
// 每次调用经过适用的拦截器链转发，最终在目标来源当前提供的对象上执行。
type Proxy struct {
	advised *Advised
	metrics *metrics.ProxyMetrics
}

// New validates the configuration, normalizes all advice, and produces the
// proxy. Configuration errors (missing target, unknown advice type, throws
// advice with no handlers) surface here, never at call time.
//
// New 校验配置、归一化所有增强并生成代理。配置错误（缺少目标、未知增强类型、
// 没有处理器的错误增强）在此处暴露，绝不延迟到调用时。
func New(advised *Advised) (*Proxy, error) {
	advised.mu.Lock()
	defer advised.mu.Unlock()
	s, err := advised.buildSnapshotLocked()
	if err != nil {
		return nil, err
	}
	atomic.StorePointer(&advised.snapshotPtr, unsafe.Pointer(s))
	advised.built = true
	return &Proxy{advised: advised, metrics: metrics.NewProxyMetrics()}, nil
}

// Advised returns the owning configuration, for runtime advisor mutation.
func (p *Proxy) Advised() *Advised { return p.advised }

// Metrics returns a copy of the proxy's invocation counters.
func (p *Proxy) Metrics() metrics.ProxyMetrics { return p.metrics.Get() }

// Call invokes method through the interceptor chain. The snapshot captured
// here is used for the whole call: a concurrent configuration change
// affects the next call, never one already in progress.
//
// Call 经拦截器链调用方法。此处捕获的快照用于整个调用过程：
// 并发的配置变更只影响下一次调用，绝不影响已经进行中的调用。
func (p *Proxy) Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	s := p.advised.snapshot()

	p.metrics.IncrementCurrent()
	p.metrics.IncrementTotal()
	defer p.metrics.DecrementCurrent()

	results, err := p.call(ctx, s, method, args)
	if err != nil {
		p.metrics.IncrementFailed()
	} else {
		p.metrics.IncrementSuccess()
	}
	return results, err
}

// CallOne invokes method and returns its single value result.
func (p *Proxy) CallOne(ctx context.Context, method string, args ...interface{}) (interface{}, error) {
	results, err := p.Call(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (p *Proxy) call(ctx context.Context, s *snapshot, method string, args []interface{}) ([]interface{}, error) {
	ts := s.targetSource

	// Resource errors (pool exhaustion, failed lazy creation) surface
	// synchronously to the caller here.
	// 资源错误（池耗尽、惰性创建失败）在此处同步暴露给调用方。
	tgt, err := ts.GetTarget(ctx)
	if err != nil {
		return nil, err
	}
	released := false
	release := func() {
		if !released && !ts.IsStatic() {
			released = true
			_ = ts.ReleaseTarget(tgt)
		}
	}
	defer release()

	targetClass := s.targetClass
	methods := s.methods
	if targetClass == nil {
		// The source cannot know its class up front; resolve per call.
		targetClass = reflect.TypeOf(tgt)
		methods = types.MethodsOf(targetClass)
	}

	m, ok := methods[method]
	var introduced types.IntroducedMethod
	if !ok {
		if im, found := s.introducedMethods(targetClass)[method]; found {
			m = types.Method{Name: method, Index: types.IntroducedMethodIndex}
			introduced = im
		} else {
			return nil, fmt.Errorf("%w: %s.%s", ErrMethodNotFound, targetClass, method)
		}
	}

	chain := s.chainFor(m, targetClass)

	if s.exposeProxy {
		ctx = types.WithProxy(ctx, p)
	}
	inv := newInvocation(ctx, m, args, tgt, p, chain, introduced)
	return inv.Proceed()
}
