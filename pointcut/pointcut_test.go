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
	"testing"

	"github.com/aopkit/aopkit/api/types"
	"github.com/aopkit/aopkit/test/assert"
)

type orderService struct{}

func (s *orderService) Save(order string) (string, error) { return order, nil }
func (s *orderService) Get(id int) (string, error)        { return "", nil }
func (s *orderService) Delete(id int) error               { return nil }

type reader interface {
	Get(id int) (string, error)
}

var orderServiceType = reflect.TypeOf(&orderService{})

func methodNamed(t *testing.T, name string) types.Method {
	t.Helper()
	m, ok := types.MethodsOf(orderServiceType)[name]
	if !ok {
		t.Fatalf("method %s not found", name)
	}
	return m
}

func TestTrueSentinel(t *testing.T) {
	pc := True()
	assert.True(t, IsTrue(pc))
	assert.True(t, IsTrue(nil))
	assert.False(t, IsTrue(NewNameMatch("Save")))

	assert.True(t, pc.ClassFilter().Matches(orderServiceType))
	assert.True(t, pc.MethodMatcher().Matches(methodNamed(t, "Save"), orderServiceType))
	assert.False(t, pc.MethodMatcher().IsRuntime())
}

func TestStaticMatcher(t *testing.T) {
	mm := Static{Fn: func(method types.Method, _ reflect.Type) bool {
		return method.Name == "Save"
	}}
	assert.True(t, mm.Matches(methodNamed(t, "Save"), orderServiceType))
	assert.False(t, mm.Matches(methodNamed(t, "Get"), orderServiceType))
	assert.False(t, mm.IsRuntime())
	// The static predicate also answers the per-call check.
	assert.True(t, mm.MatchesArgs(methodNamed(t, "Save"), orderServiceType, []interface{}{"x"}))
}

func TestDynamicMatcher(t *testing.T) {
	mm := Dynamic{
		Fn: func(method types.Method, _ reflect.Type) bool {
			return method.Name == "Save"
		},
		ArgsFn: func(_ types.Method, _ reflect.Type, args []interface{}) bool {
			return len(args) == 1 && args[0] == "ok"
		},
	}
	assert.True(t, mm.IsRuntime())
	assert.True(t, mm.Matches(methodNamed(t, "Save"), orderServiceType))
	assert.False(t, mm.Matches(methodNamed(t, "Get"), orderServiceType))
	assert.True(t, mm.MatchesArgs(methodNamed(t, "Save"), orderServiceType, []interface{}{"ok"}))
	assert.False(t, mm.MatchesArgs(methodNamed(t, "Save"), orderServiceType, []interface{}{"no"}))
}

func TestDynamicMatcherNilPreFilter(t *testing.T) {
	mm := Dynamic{ArgsFn: func(_ types.Method, _ reflect.Type, _ []interface{}) bool {
		return false
	}}
	assert.True(t, mm.Matches(methodNamed(t, "Get"), orderServiceType))
}

func TestDefaultNilFallbacks(t *testing.T) {
	pc := Default{}
	assert.True(t, pc.ClassFilter().Matches(orderServiceType))
	assert.True(t, pc.MethodMatcher().Matches(methodNamed(t, "Delete"), orderServiceType))

	built := New(nil, nil)
	assert.True(t, built.ClassFilter().Matches(orderServiceType))
}

func TestForClass(t *testing.T) {
	pc := ForClass(orderServiceType)
	assert.True(t, pc.ClassFilter().Matches(orderServiceType))
	assert.False(t, pc.ClassFilter().Matches(reflect.TypeOf("")))
	assert.True(t, pc.MethodMatcher().Matches(methodNamed(t, "Save"), orderServiceType))
}

func TestClassFilterForInterface(t *testing.T) {
	readerType := reflect.TypeOf((*reader)(nil)).Elem()
	filter := ClassFilterFor(readerType)
	assert.True(t, filter.Matches(orderServiceType))
	assert.False(t, filter.Matches(reflect.TypeOf(42)))
	assert.False(t, filter.Matches(nil))
}
