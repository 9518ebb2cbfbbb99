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

package types

import "reflect"

// IntroducedMethodIndex marks a Method contributed by an introduction
// advisor rather than declared on the target class.
// IntroducedMethodIndex 标记由引入（introduction）增强器贡献、而非目标类型声明的方法。
const IntroducedMethodIndex = -1

// Method describes one callable method on a proxied target.
// It is the unit pointcut method-matchers evaluate against.
//
// Method 描述被代理目标上的一个可调用方法，是切点方法匹配器的求值单元。
type Method struct {
	// Name is the exported method name.
	Name string
	// Type is the bound method signature with the receiver excluded.
	// Nil for introduced methods, which have no declared Go signature.
	// Type 是不含接收者的方法签名。引入方法没有声明的 Go 签名，此字段为 nil。
	Type reflect.Type
	// Index is the method's position in the target class's method set,
	// or IntroducedMethodIndex for introduced methods.
	Index int
}

// NumIn returns the number of declared parameters, receiver excluded.
// Introduced methods report -1 (unknown).
func (m Method) NumIn() int {
	if m.Type == nil {
		return -1
	}
	return m.Type.NumIn()
}

// IsIntroduced reports whether the method was contributed by an
// introduction advisor.
func (m Method) IsIntroduced() bool {
	return m.Index == IntroducedMethodIndex
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// ReturnsError reports whether the method's last result is an error.
// The trailing error result is the invocation's failure channel.
// ReturnsError 报告方法的最后一个返回值是否为 error。尾部 error 返回值是调用的失败通道。
func (m Method) ReturnsError() bool {
	if m.Type == nil {
		return true
	}
	n := m.Type.NumOut()
	return n > 0 && m.Type.Out(n-1) == errType
}

// MethodOf builds the Method descriptor for one entry of a target class's
// method set, stripping the receiver from the reflected signature.
//
// MethodOf 为目标类型方法集中的一个条目构建 Method 描述符，并从反射签名中剥离接收者。
func MethodOf(targetClass reflect.Type, m reflect.Method) Method {
	ft := m.Type
	if targetClass.Kind() == reflect.Interface {
		// Interface method signatures carry no receiver.
		// 接口方法签名不包含接收者。
		return Method{Name: m.Name, Type: ft, Index: m.Index}
	}
	in := make([]reflect.Type, 0, ft.NumIn())
	for i := 1; i < ft.NumIn(); i++ {
		in = append(in, ft.In(i))
	}
	out := make([]reflect.Type, 0, ft.NumOut())
	for i := 0; i < ft.NumOut(); i++ {
		out = append(out, ft.Out(i))
	}
	return Method{
		Name:  m.Name,
		Type:  reflect.FuncOf(in, out, ft.IsVariadic()),
		Index: m.Index,
	}
}

// MethodsOf returns the descriptors of every exported method declared on
// the target class, keyed by name.
func MethodsOf(targetClass reflect.Type) map[string]Method {
	methods := make(map[string]Method, targetClass.NumMethod())
	for i := 0; i < targetClass.NumMethod(); i++ {
		m := targetClass.Method(i)
		if m.PkgPath != "" {
			continue
		}
		methods[m.Name] = MethodOf(targetClass, m)
	}
	return methods
}
