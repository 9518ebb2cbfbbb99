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

package proxy

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/gofrs/uuid/v5"

	"github.com/aopkit/aopkit/api/types"
)

var (
	// ErrArgumentCount indicates a call with the wrong number of arguments
	// for the resolved method.
	ErrArgumentCount = errors.New("argument count mismatch")
	// ErrArgumentType indicates an argument not assignable to the declared
	// parameter type.
	ErrArgumentType = errors.New("argument type mismatch")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// methodInvocation executes one interceptor chain. Each Proceed call
// advances the cursor by one link; the terminal step reflect-calls the
// target method (or an introduced method). The chain is a plain nested call
// stack on the caller's goroutine: no implicit threading, no implicit
// recover.
//
// methodInvocation 执行一条拦截器链。每次 Proceed 调用将游标推进一个环节；
// 终点步骤通过反射调用目标方法（或引入方法）。
// 链就是调用方协程上的普通嵌套调用栈：没有隐式并发，也没有隐式 recover。
type methodInvocation struct {
	ctx        context.Context
	id         string
	method     types.Method
	args       []interface{}
	target     interface{}
	proxy      interface{}
	chain      []types.Interceptor
	cursor     int
	introduced types.IntroducedMethod
}

var _ types.Invocation = (*methodInvocation)(nil)

func newInvocation(ctx context.Context, method types.Method, args []interface{}, target interface{}, proxy interface{}, chain []types.Interceptor, introduced types.IntroducedMethod) *methodInvocation {
	uuId, _ := uuid.NewV4()
	return &methodInvocation{
		ctx:        ctx,
		id:         uuId.String(),
		method:     method,
		args:       args,
		target:     target,
		proxy:      proxy,
		chain:      chain,
		introduced: introduced,
	}
}

func (inv *methodInvocation) Context() context.Context { return inv.ctx }
func (inv *methodInvocation) ID() string               { return inv.id }
func (inv *methodInvocation) Method() types.Method     { return inv.method }
func (inv *methodInvocation) Arguments() []interface{} { return inv.args }
func (inv *methodInvocation) Target() interface{}      { return inv.target }
func (inv *methodInvocation) Proxy() interface{}       { return inv.proxy }

func (inv *methodInvocation) SetArguments(args []interface{}) { inv.args = args }

// Proceed runs the next link of the chain, terminating in the real call.
func (inv *methodInvocation) Proceed() ([]interface{}, error) {
	if inv.cursor < len(inv.chain) {
		ic := inv.chain[inv.cursor]
		inv.cursor++
		return ic.Invoke(inv)
	}
	return inv.invokeTarget()
}

// invokeTarget is the terminal state: the real call on the target object.
// An error raised here propagates unchanged up through every interceptor.
// invokeTarget 是终点状态：在目标对象上的真实调用。此处产生的错误原样向上穿过每个拦截器。
func (inv *methodInvocation) invokeTarget() ([]interface{}, error) {
	if inv.introduced != nil {
		return inv.introduced(inv.ctx, inv.args)
	}
	mv := reflect.ValueOf(inv.target).Method(inv.method.Index)
	mt := mv.Type()

	if mt.IsVariadic() {
		if len(inv.args) < mt.NumIn()-1 {
			return nil, fmt.Errorf("%w: %s wants at least %d, got %d",
				ErrArgumentCount, inv.method.Name, mt.NumIn()-1, len(inv.args))
		}
	} else if len(inv.args) != mt.NumIn() {
		return nil, fmt.Errorf("%w: %s wants %d, got %d",
			ErrArgumentCount, inv.method.Name, mt.NumIn(), len(inv.args))
	}

	in := make([]reflect.Value, len(inv.args))
	for i, arg := range inv.args {
		paramType := parameterType(mt, i)
		if arg == nil {
			in[i] = reflect.Zero(paramType)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(paramType) {
			if !av.Type().ConvertibleTo(paramType) {
				return nil, fmt.Errorf("%w: %s argument %d: %s is not assignable to %s",
					ErrArgumentType, inv.method.Name, i, av.Type(), paramType)
			}
			av = av.Convert(paramType)
		}
		in[i] = av
	}

	out := mv.Call(in)
	return splitResults(mt, out)
}

// parameterType resolves the declared type of argument i, unrolling the
// variadic slice element type.
func parameterType(mt reflect.Type, i int) reflect.Type {
	if mt.IsVariadic() && i >= mt.NumIn()-1 {
		return mt.In(mt.NumIn() - 1).Elem()
	}
	return mt.In(i)
}

// splitResults converts reflected results, separating the trailing error
// result (the invocation's failure channel) from the value results.
func splitResults(mt reflect.Type, out []reflect.Value) ([]interface{}, error) {
	n := mt.NumOut()
	hasErr := n > 0 && mt.Out(n-1) == errorType
	values := n
	if hasErr {
		values = n - 1
	}
	results := make([]interface{}, 0, values)
	for i := 0; i < values; i++ {
		results = append(results, out[i].Interface())
	}
	var err error
	if hasErr && !out[n-1].IsNil() {
		err = out[n-1].Interface().(error)
	}
	return results, err
}
