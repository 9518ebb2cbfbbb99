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

package advice

import (
	"github.com/aopkit/aopkit/api/types"
	"github.com/aopkit/aopkit/api/types/metrics"
)

// Metrics counts invocations passing through its pointcut: in-flight,
// total, failed, succeeded. Pair it with a pointcut to meter a subset of
// methods instead of the whole proxy.
//
// Metrics 统计经过其切点的调用：进行中、总数、失败、成功。
// 与切点配合可只统计部分方法而非整个代理。
type Metrics struct {
	metrics *metrics.ProxyMetrics
}

var _ types.Interceptor = (*Metrics)(nil)

// NewMetrics creates a metrics interceptor with fresh counters.
func NewMetrics() *Metrics {
	return &Metrics{metrics: metrics.NewProxyMetrics()}
}

func (m *Metrics) Invoke(inv types.Invocation) ([]interface{}, error) {
	m.metrics.IncrementCurrent()
	m.metrics.IncrementTotal()
	defer m.metrics.DecrementCurrent()
	result, err := inv.Proceed()
	if err != nil {
		m.metrics.IncrementFailed()
	} else {
		m.metrics.IncrementSuccess()
	}
	return result, err
}

// Get returns a copy of the current counters.
func (m *Metrics) Get() metrics.ProxyMetrics {
	return m.metrics.Get()
}

// Reset resets all counters to zero.
func (m *Metrics) Reset() {
	m.metrics.Reset()
}
