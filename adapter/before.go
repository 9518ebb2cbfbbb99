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

package adapter

import "github.com/aopkit/aopkit/api/types"

// methodBeforeAdapter normalizes MethodBeforeAdvice into an interceptor.
type methodBeforeAdapter struct{}

func (methodBeforeAdapter) SupportsAdvice(advice interface{}) bool {
	_, ok := advice.(types.MethodBeforeAdvice)
	return ok
}

func (methodBeforeAdapter) GetInterceptor(adv types.Advisor) (types.Interceptor, error) {
	advice := adv.Advice().(types.MethodBeforeAdvice)
	return &beforeInterceptor{advice: advice}, nil
}

// beforeInterceptor runs the before advice, then proceeds. A non-nil error
// from the advice aborts the invocation before the target is reached.
// beforeInterceptor 先执行前置增强再继续。增强返回非 nil 错误会在到达目标前中止调用。
type beforeInterceptor struct {
	advice types.MethodBeforeAdvice
}

func (ic *beforeInterceptor) Invoke(inv types.Invocation) ([]interface{}, error) {
	if err := ic.advice.Before(inv.Context(), inv.Method(), inv.Arguments(), inv.Target()); err != nil {
		return nil, err
	}
	return inv.Proceed()
}
