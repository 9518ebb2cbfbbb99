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

// Package js provides JavaScript execution for script advice, implemented
// on the goja library. Virtual machines are pooled for reuse; scripts are
// compiled once and run with access to global properties and user-defined
// Go functions.
//
// Package js 为脚本增强提供基于 goja 库的 JavaScript 执行能力。
// 虚拟机通过池复用；脚本编译一次，运行时可访问全局属性和用户定义的 Go 函数。
package js

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dop251/goja"

	"github.com/aopkit/aopkit/api/types"
)

const (
	// GlobalKey exposes config.Properties to scripts as global.xx.
	GlobalKey = "global"
)

// GojaJsEngine is a pooled goja engine bound to one compiled script.
type GojaJsEngine struct {
	vmPool   sync.Pool
	config   types.Config
	jsScript *goja.Program
	udf      map[string]*goja.Program
}

// NewGojaJsEngine compiles jsScript and prepares the VM pool. String
// entries of config.Udf are precompiled; other entries are bound as Go
// functions.
func NewGojaJsEngine(config types.Config, jsScript string) (*GojaJsEngine, error) {
	program, err := goja.Compile("", jsScript, true)
	if err != nil {
		return nil, err
	}
	engine := &GojaJsEngine{
		config:   config,
		jsScript: program,
	}
	if err = engine.preCompileUdf(config); err != nil {
		return nil, err
	}
	engine.vmPool = sync.Pool{
		New: func() interface{} {
			return engine.newVm(config)
		},
	}
	return engine, nil
}

// preCompileUdf precompiles the user-defined JavaScript functions.
func (g *GojaJsEngine) preCompileUdf(config types.Config) error {
	udf := make(map[string]*goja.Program)
	for k, v := range config.Udf {
		if src, ok := v.(string); ok {
			p, err := goja.Compile(k, src, true)
			if err != nil {
				return err
			}
			udf[k] = p
		}
	}
	g.udf = udf
	return nil
}

// newVm builds a VM with globals, udf bindings, and the main script loaded.
func (g *GojaJsEngine) newVm(config types.Config) *goja.Runtime {
	vm := goja.New()

	if len(config.Properties) != 0 {
		if err := vm.Set(GlobalKey, config.Properties); err != nil {
			config.Logger.Printf("set global properties error: %s", err.Error())
		}
	}
	for k, v := range config.Udf {
		var err error
		if _, ok := v.(string); ok {
			if p, exists := g.udf[k]; exists {
				_, err = vm.RunProgram(p)
			}
		} else {
			// Direct Go function. 直接绑定 Go 函数。
			err = vm.Set(k, v)
		}
		if err != nil {
			config.Logger.Printf("parse js script=%s error: %s", k, err.Error())
		}
	}

	timer := g.startTimeout(vm)
	_, err := vm.RunProgram(g.jsScript)
	g.stopTimeout(timer)
	if err != nil {
		config.Logger.Printf("js vm error: %s", err.Error())
	}
	return vm
}

// Execute runs a named function from the script with the given arguments.
func (g *GojaJsEngine) Execute(functionName string, argumentList ...interface{}) (out interface{}, err error) {
	defer func() {
		if caught := recover(); caught != nil {
			err = fmt.Errorf("%s", caught)
		}
	}()

	vm := g.vmPool.Get().(*goja.Runtime)
	defer g.vmPool.Put(vm)

	var timer *time.Timer
	if g.config.ScriptMaxExecutionTime > 0 {
		timer = g.startTimeout(vm)
		defer g.stopTimeout(timer)
	}

	f, ok := goja.AssertFunction(vm.Get(functionName))
	if !ok {
		return nil, errors.New(functionName + " is not a function")
	}

	var params []goja.Value
	if len(argumentList) > 0 {
		params = make([]goja.Value, len(argumentList))
		for i, v := range argumentList {
			params[i] = vm.ToValue(v)
		}
	}

	res, err := f(goja.Undefined(), params...)
	if err != nil {
		return nil, err
	}
	return res.Export(), nil
}

// startTimeout interrupts the VM when the configured script execution
// budget elapses. Returns nil if no budget is configured.
func (g *GojaJsEngine) startTimeout(vm *goja.Runtime) *time.Timer {
	if g.config.ScriptMaxExecutionTime <= 0 {
		return nil
	}
	return time.AfterFunc(g.config.ScriptMaxExecutionTime, func() {
		vm.Interrupt("execution timeout")
	})
}

func (g *GojaJsEngine) stopTimeout(timer *time.Timer) {
	if timer != nil {
		timer.Stop()
	}
}
