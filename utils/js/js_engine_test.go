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

package js

import (
	"testing"
	"time"

	"github.com/aopkit/aopkit/api/types"
	"github.com/aopkit/aopkit/test/assert"
)

func TestExecuteFunction(t *testing.T) {
	engine, err := NewGojaJsEngine(types.NewConfig(), `
		function Add(a, b) {
			return a + b;
		}
	`)
	assert.Nil(t, err)

	out, err := engine.Execute("Add", 2, 3)
	assert.Nil(t, err)
	assert.Equal(t, int64(5), out)
}

func TestExecuteNotAFunction(t *testing.T) {
	engine, err := NewGojaJsEngine(types.NewConfig(), `var x = 1;`)
	assert.Nil(t, err)

	_, err = engine.Execute("Missing")
	assert.NotNil(t, err)
}

func TestCompileError(t *testing.T) {
	_, err := NewGojaJsEngine(types.NewConfig(), `function {`)
	assert.NotNil(t, err)
}

func TestGlobalProperties(t *testing.T) {
	config := types.NewConfig(types.WithProperties(map[string]string{"env": "test"}))
	engine, err := NewGojaJsEngine(config, `
		function Env() {
			return global.env;
		}
	`)
	assert.Nil(t, err)

	out, err := engine.Execute("Env")
	assert.Nil(t, err)
	assert.Equal(t, "test", out)
}

func TestGoUdf(t *testing.T) {
	config := types.NewConfig()
	config.RegisterUdf("upper", func(s string) string {
		return s + "!"
	})
	engine, err := NewGojaJsEngine(config, `
		function Shout(s) {
			return upper(s);
		}
	`)
	assert.Nil(t, err)

	out, err := engine.Execute("Shout", "hi")
	assert.Nil(t, err)
	assert.Equal(t, "hi!", out)
}

func TestScriptUdf(t *testing.T) {
	config := types.NewConfig()
	config.RegisterUdf("double", `function double(x) { return x * 2; }`)
	engine, err := NewGojaJsEngine(config, `
		function Calc(x) {
			return double(x);
		}
	`)
	assert.Nil(t, err)

	out, err := engine.Execute("Calc", 21)
	assert.Nil(t, err)
	assert.Equal(t, int64(42), out)
}

func TestScriptUdfCompileError(t *testing.T) {
	config := types.NewConfig()
	config.RegisterUdf("broken", `function {`)
	_, err := NewGojaJsEngine(config, `function F() { return 1; }`)
	assert.NotNil(t, err)
}

func TestExecutionTimeout(t *testing.T) {
	config := types.NewConfig(types.WithScriptMaxExecutionTime(50 * time.Millisecond))
	engine, err := NewGojaJsEngine(config, `
		function Spin() {
			while (true) { }
		}
	`)
	assert.Nil(t, err)

	_, err = engine.Execute("Spin")
	assert.NotNil(t, err)
}
