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
	"time"

	"github.com/aopkit/aopkit/api/types"
)

// Debug is a logging interceptor recording every invocation flowing
// through the proxy: method, arguments, duration, and outcome. Essential
// for tracing which advice chain a call actually traversed.
//
// Debug 是记录流经代理的每次调用的日志拦截器：方法、参数、耗时与结果。
// 对于追踪调用实际经过的增强链至关重要。
type Debug struct {
	Logger types.Logger
}

var _ types.Interceptor = (*Debug)(nil)

// NewDebug creates a debug interceptor writing to logger; a nil logger
// falls back to the default.
func NewDebug(logger types.Logger) *Debug {
	return &Debug{Logger: types.NewLogger(logger)}
}

func (d *Debug) Invoke(inv types.Invocation) ([]interface{}, error) {
	start := time.Now()
	d.Logger.Printf("IN  id=%s method=%s args=%v", inv.ID(), inv.Method().Name, inv.Arguments())
	result, err := inv.Proceed()
	if err != nil {
		d.Logger.Printf("OUT id=%s method=%s elapsed=%s err=%s", inv.ID(), inv.Method().Name, time.Since(start), err)
	} else {
		d.Logger.Printf("OUT id=%s method=%s elapsed=%s result=%v", inv.ID(), inv.Method().Name, time.Since(start), result)
	}
	return result, err
}
