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

package pointcut

import (
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/aopkit/aopkit/api/types"
)

// Expr is an expression-driven pointcut. The expression is compiled once
// and evaluated against the candidate method's metadata:
//
//	通过`method`变量访问方法名。例如: method startsWith "Get"
//	通过`class`变量访问目标类型名。例如: class contains "Service"
//	通过`numIn`变量访问声明的参数个数。
//	Runtime variant additionally exposes the `args` variable per call.
//
// Example: `method matches "^(Save|Update)" and numIn == 1`.
// A failed evaluation matches nothing, never errors the call.
//
// Expr 是表达式驱动的切点。表达式编译一次，针对候选方法的元数据求值。
// 求值失败视为不匹配，绝不使调用出错。
type Expr struct {
	program *vm.Program
	runtime bool
}

var _ types.Pointcut = (*Expr)(nil)
var _ types.MethodMatcher = (*Expr)(nil)

// NewExpr compiles a static expression pointcut. The expression sees the
// `method`, `class` and `numIn` variables and is evaluated once per method
// at chain-build time.
func NewExpr(expression string) (*Expr, error) {
	program, err := expr.Compile(expression, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, err
	}
	return &Expr{program: program}, nil
}

// NewRuntimeExpr compiles a dynamic expression pointcut. In addition to the
// static variables the expression sees `args`, so it is re-evaluated on
// every call with that call's actual arguments.
//
// NewRuntimeExpr 编译动态表达式切点。除静态变量外表达式还能访问 `args`，
// 因此每次调用都会用该次调用的实际参数重新求值。
func NewRuntimeExpr(expression string) (*Expr, error) {
	program, err := expr.Compile(expression, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, err
	}
	return &Expr{program: program, runtime: true}, nil
}

func (p *Expr) ClassFilter() types.ClassFilter     { return TrueClassFilter }
func (p *Expr) MethodMatcher() types.MethodMatcher { return p }

func (p *Expr) Matches(method types.Method, targetClass reflect.Type) bool {
	if p.runtime {
		// Chain membership is decided per call for the runtime variant.
		// 动态变体的链成员资格在每次调用时决定。
		return true
	}
	return p.eval(method, targetClass, nil)
}

func (p *Expr) IsRuntime() bool { return p.runtime }

func (p *Expr) MatchesArgs(method types.Method, targetClass reflect.Type, args []interface{}) bool {
	return p.eval(method, targetClass, args)
}

func (p *Expr) eval(method types.Method, targetClass reflect.Type, args []interface{}) bool {
	env := map[string]interface{}{
		"method": method.Name,
		"numIn":  method.NumIn(),
	}
	if targetClass != nil {
		env["class"] = targetClass.String()
	}
	if args != nil {
		env["args"] = args
	}
	out, err := vm.Run(p.program, env)
	if err != nil {
		return false
	}
	result, ok := out.(bool)
	return ok && result
}
