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

// afterReturningAdapter normalizes AfterReturningAdvice into an interceptor.
type afterReturningAdapter struct{}

func (afterReturningAdapter) SupportsAdvice(advice interface{}) bool {
	_, ok := advice.(types.AfterReturningAdvice)
	return ok
}

func (afterReturningAdapter) GetInterceptor(adv types.Advisor) (types.Interceptor, error) {
	advice := adv.Advice().(types.AfterReturningAdvice)
	return &afterReturningInterceptor{advice: advice}, nil
}

// afterReturningInterceptor proceeds first; the advice observes the result
// only on success. A failed invocation skips the advice and the error
// propagates unchanged.
// afterReturningInterceptor 先继续执行；仅在成功时增强观察结果。
// 失败的调用跳过增强，错误原样传播。
type afterReturningInterceptor struct {
	advice types.AfterReturningAdvice
}

func (ic *afterReturningInterceptor) Invoke(inv types.Invocation) ([]interface{}, error) {
	result, err := inv.Proceed()
	if err != nil {
		return result, err
	}
	if err := ic.advice.AfterReturning(inv.Context(), result, inv.Method(), inv.Arguments(), inv.Target()); err != nil {
		return nil, err
	}
	return result, nil
}
