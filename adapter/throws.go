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

import (
	"errors"
	"reflect"

	"github.com/aopkit/aopkit/api/types"
)

// ErrNoHandlers indicates a throws advice built with an empty handler
// table, a configuration error.
var ErrNoHandlers = errors.New("throws advice declares no error handlers")

// Throws builds a throws advice from an explicit handler table. Handlers
// observe errors raised by the target or by later interceptors; the
// original error always propagates unchanged.
//
// Dispatch walks the thrown error's unwrap chain from the concrete value
// outward. At each level an exact dynamic-type handler wins; sentinel
// handlers (errors.Is) are consulted only when no typed handler matched
// anywhere in the chain. The innermost applicable registration is therefore
// the most specific one.
//
// Throws 从显式处理器表构建错误增强。处理器观察目标或后续拦截器抛出的错误；
// 原始错误总是原样向上传播。
// 分发沿抛出错误的展开链从具体值向外查找：每一层精确动态类型处理器优先；
// 仅当整条链上没有类型处理器匹配时才咨询哨兵（errors.Is）处理器。
type Throws struct {
	entries []types.ErrorHandlerEntry
}

var _ types.ThrowsAdvice = (*Throws)(nil)

// NewThrows creates an empty throws advice builder. At least one handler
// must be registered before use; Validate (and proxy construction) fail on
// an empty table.
func NewThrows() *Throws {
	return &Throws{}
}

// OnType registers a handler for errors whose dynamic type equals the
// dynamic type of prototype, at any level of the wrap chain.
// OnType 注册处理器，处理展开链任意层级上动态类型等于 prototype 动态类型的错误。
func (t *Throws) OnType(prototype error, handle types.ErrorHandlerFunc) *Throws {
	t.entries = append(t.entries, types.ErrorHandlerEntry{
		Type:   reflect.TypeOf(prototype),
		Handle: handle,
	})
	return t
}

// On registers a handler for errors matching errors.Is(err, sentinel).
func (t *Throws) On(sentinel error, handle types.ErrorHandlerFunc) *Throws {
	t.entries = append(t.entries, types.ErrorHandlerEntry{
		Sentinel: sentinel,
		Handle:   handle,
	})
	return t
}

// ErrorHandlers returns the registered handler table.
func (t *Throws) ErrorHandlers() []types.ErrorHandlerEntry {
	return t.entries
}

// Validate reports ErrNoHandlers when the table is empty.
func (t *Throws) Validate() error {
	if len(t.entries) == 0 {
		return ErrNoHandlers
	}
	return nil
}

// throwsAdapter normalizes ThrowsAdvice into an interceptor.
type throwsAdapter struct{}

func (throwsAdapter) SupportsAdvice(advice interface{}) bool {
	_, ok := advice.(types.ThrowsAdvice)
	return ok
}

func (throwsAdapter) GetInterceptor(adv types.Advisor) (types.Interceptor, error) {
	advice := adv.Advice().(types.ThrowsAdvice)
	entries := advice.ErrorHandlers()
	if len(entries) == 0 {
		return nil, ErrNoHandlers
	}
	byType := make(map[reflect.Type]types.ErrorHandlerFunc, len(entries))
	var sentinels []types.ErrorHandlerEntry
	for _, e := range entries {
		if e.Type != nil {
			// First registration for a type wins.
			if _, exists := byType[e.Type]; !exists {
				byType[e.Type] = e.Handle
			}
		} else if e.Sentinel != nil {
			sentinels = append(sentinels, e)
		}
	}
	return &throwsInterceptor{advice: advice, byType: byType, sentinels: sentinels}, nil
}

type throwsInterceptor struct {
	advice    types.ThrowsAdvice
	byType    map[reflect.Type]types.ErrorHandlerFunc
	sentinels []types.ErrorHandlerEntry
}

func (ic *throwsInterceptor) Invoke(inv types.Invocation) ([]interface{}, error) {
	result, err := inv.Proceed()
	if err != nil {
		if handle := ic.resolve(err); handle != nil {
			handle(inv.Context(), inv.Method(), inv.Arguments(), inv.Target(), err)
		}
		// Re-throw unchanged. 错误原样向上抛出。
		return result, err
	}
	return result, nil
}

// resolve finds the most specific handler for err, or nil when no
// registration matches. An unhandled error type invokes no handler.
func (ic *throwsInterceptor) resolve(err error) types.ErrorHandlerFunc {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if handle, ok := ic.byType[reflect.TypeOf(e)]; ok {
			return handle
		}
	}
	for _, entry := range ic.sentinels {
		if errors.Is(err, entry.Sentinel) {
			return entry.Handle
		}
	}
	return nil
}
