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
	"time"

	"github.com/aopkit/aopkit/api/types"
)

// ErrInvocationTimeout indicates a call abandoned because it exceeded the
// configured deadline.
var ErrInvocationTimeout = errors.New("invocation timeout")

// Timeout bounds a call by racing the rest of the chain against a timer.
// The chain itself has no first-class cancellation: when the deadline
// fires, the caller gets ErrInvocationTimeout while the abandoned call
// still runs to completion on its own goroutine. The target must tolerate
// that overlap.
//
// Timeout 通过让链的剩余部分与定时器赛跑来限定一次调用。
// 链本身没有一等的取消概念：截止时间到达时调用方得到 ErrInvocationTimeout，
// 而被放弃的调用仍在自己的协程上执行完毕。目标必须能容忍这种重叠。
type Timeout struct {
	Duration time.Duration
}

var _ types.Interceptor = (*Timeout)(nil)

// NewTimeout creates a timeout interceptor with the given budget.
func NewTimeout(d time.Duration) *Timeout {
	return &Timeout{Duration: d}
}

type callResult struct {
	result []interface{}
	err    error
}

func (t *Timeout) Invoke(inv types.Invocation) ([]interface{}, error) {
	done := make(chan callResult, 1)
	go func() {
		result, err := inv.Proceed()
		done <- callResult{result: result, err: err}
	}()

	timer := time.NewTimer(t.Duration)
	defer timer.Stop()

	select {
	case r := <-done:
		return r.result, r.err
	case <-timer.C:
		return nil, ErrInvocationTimeout
	case <-inv.Context().Done():
		return nil, inv.Context().Err()
	}
}
