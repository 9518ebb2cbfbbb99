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
	"errors"
	"sync/atomic"

	"github.com/aopkit/aopkit/api/types"
)

// ErrConcurrencyLimitReached indicates an invocation rejected because the
// configured number of concurrent calls is already in flight.
// ErrConcurrencyLimitReached 表示因已达到配置的并发调用数而被拒绝的调用。
var ErrConcurrencyLimitReached = errors.New("concurrency limit reached")

// ConcurrencyLimiter restricts the number of concurrent invocations
// through the proxy using atomic compare-and-swap, preventing overload
// without a lock on the hot path.
//
// ConcurrencyLimiter 使用原子比较并交换限制经过代理的并发调用数量，
// 在不给热路径加锁的情况下防止过载。
type ConcurrencyLimiter struct {
	Max          int64 // Maximum number of concurrent invocations  最大并发调用数量
	currentCount int64 // Current number of concurrent invocations  当前并发调用数量
}

var _ types.Interceptor = (*ConcurrencyLimiter)(nil)

// NewConcurrencyLimiter creates a limiter allowing at most max concurrent
// invocations.
func NewConcurrencyLimiter(max int) *ConcurrencyLimiter {
	return &ConcurrencyLimiter{Max: int64(max)}
}

func (a *ConcurrencyLimiter) Invoke(inv types.Invocation) ([]interface{}, error) {
	// 使用原子操作确保检查和增加操作的原子性
	for {
		current := atomic.LoadInt64(&a.currentCount)
		if current >= a.Max {
			return nil, ErrConcurrencyLimitReached
		}
		if atomic.CompareAndSwapInt64(&a.currentCount, current, current+1) {
			break
		}
	}
	defer atomic.AddInt64(&a.currentCount, -1)
	return inv.Proceed()
}

// Current returns the number of invocations currently in flight.
func (a *ConcurrencyLimiter) Current() int64 {
	return atomic.LoadInt64(&a.currentCount)
}
