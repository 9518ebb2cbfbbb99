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
	"context"
	"errors"
	"fmt"

	"github.com/aopkit/aopkit/api/types"
	"github.com/aopkit/aopkit/utils/js"
)

// ErrScriptRejected indicates a call vetoed by a script filter.
var ErrScriptRejected = errors.New("invocation rejected by script filter")

// ScriptFilter is before advice driven by a JavaScript predicate. The
// script must declare
//
//	function Filter(method, args) { ... return true/false; }
//
// returning false vetoes the call before the target is reached. Scripts
// see config.Properties through the `global` variable and may call
// functions registered with config.RegisterUdf.
//
// ScriptFilter 是由 JavaScript 谓词驱动的前置增强。脚本必须声明
// Filter(method, args) 函数，返回 false 会在到达目标前否决调用。
// 脚本可通过 `global` 变量访问 config.Properties，并可调用
// config.RegisterUdf 注册的函数。
type ScriptFilter struct {
	engine *js.GojaJsEngine
}

var _ types.MethodBeforeAdvice = (*ScriptFilter)(nil)

// NewScriptFilter compiles the filter script. A compilation failure is a
// configuration error surfaced immediately.
func NewScriptFilter(config types.Config, script string) (*ScriptFilter, error) {
	engine, err := js.NewGojaJsEngine(config, script)
	if err != nil {
		return nil, err
	}
	return &ScriptFilter{engine: engine}, nil
}

func (s *ScriptFilter) Before(_ context.Context, method types.Method, args []interface{}, _ interface{}) error {
	out, err := s.engine.Execute("Filter", method.Name, args)
	if err != nil {
		return err
	}
	if pass, ok := out.(bool); ok && pass {
		return nil
	}
	return fmt.Errorf("%w: method %s", ErrScriptRejected, method.Name)
}
