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

type accountService struct{}

func (s *accountService) Save(v string) error { return nil }
func (s *accountService) Load(id int) error   { return nil }

var accountServiceType = reflect.TypeOf(&accountService{})

func TestUnionClassFilter(t *testing.T) {
	orders := ClassFilterFor(orderServiceType)
	accounts := ClassFilterFor(accountServiceType)
	union := UnionClassFilter(orders, accounts)
	assert.True(t, union.Matches(orderServiceType))
	assert.True(t, union.Matches(accountServiceType))
	assert.False(t, union.Matches(reflect.TypeOf(42)))
}

func TestIntersectionClassFilter(t *testing.T) {
	orders := ClassFilterFor(orderServiceType)
	all := TrueClassFilter
	both := IntersectionClassFilter(orders, all)
	assert.True(t, both.Matches(orderServiceType))
	assert.False(t, both.Matches(accountServiceType))
}

func TestUnionMethodMatcher(t *testing.T) {
	save := NewNameMatch("Save").MethodMatcher()
	get := NewNameMatch("Get").MethodMatcher()
	union := UnionMethodMatcher(save, get)
	assert.True(t, union.Matches(methodNamed(t, "Save"), orderServiceType))
	assert.True(t, union.Matches(methodNamed(t, "Get"), orderServiceType))
	assert.False(t, union.Matches(methodNamed(t, "Delete"), orderServiceType))
	assert.False(t, union.IsRuntime())
}

func TestIntersectionMethodMatcher(t *testing.T) {
	starts := NewNameMatch("Sa*").MethodMatcher()
	ends := NewNameMatch("*ve").MethodMatcher()
	both := IntersectionMethodMatcher(starts, ends)
	assert.True(t, both.Matches(methodNamed(t, "Save"), orderServiceType))
	assert.False(t, both.Matches(methodNamed(t, "Get"), orderServiceType))
}

func TestComposedRuntimePropagates(t *testing.T) {
	static := NewNameMatch("Save").MethodMatcher()
	dynamic := Dynamic{ArgsFn: func(_ types.Method, _ reflect.Type, args []interface{}) bool {
		return len(args) > 0
	}}
	union := UnionMethodMatcher(static, dynamic)
	assert.True(t, union.IsRuntime())

	// A static side that matches wins the union without consulting the
	// dynamic side's args check.
	assert.True(t, union.MatchesArgs(methodNamed(t, "Save"), orderServiceType, nil))
	// Neither side matches: static name differs, args check fails.
	assert.False(t, union.MatchesArgs(methodNamed(t, "Delete"), orderServiceType, nil))
	// Only the dynamic side matches.
	assert.True(t, union.MatchesArgs(methodNamed(t, "Delete"), orderServiceType, []interface{}{1}))
}

func TestUnionPreservesPairing(t *testing.T) {
	// A: only orderService classes, only Save methods.
	a := New(ClassFilterFor(orderServiceType), NewNameMatch("Save").MethodMatcher())
	// B: only accountService classes, only Load methods.
	b := New(ClassFilterFor(accountServiceType), NewNameMatch("Load").MethodMatcher())
	union := Union(a, b)

	saveOnOrders := methodNamed(t, "Save")
	loadOnAccounts := types.MethodsOf(accountServiceType)["Load"]
	saveOnAccounts := types.MethodsOf(accountServiceType)["Save"]

	assert.True(t, union.ClassFilter().Matches(orderServiceType))
	assert.True(t, union.ClassFilter().Matches(accountServiceType))

	assert.True(t, union.MethodMatcher().Matches(saveOnOrders, orderServiceType))
	assert.True(t, union.MethodMatcher().Matches(loadOnAccounts, accountServiceType))

	// A's method matcher must not leak to B's class: Save on accountService
	// matches neither whole pointcut.
	assert.False(t, union.MethodMatcher().Matches(saveOnAccounts, accountServiceType))
}

func TestUnionSentinelAbsorbs(t *testing.T) {
	pc := Union(True(), NewNameMatch("Save"))
	assert.True(t, IsTrue(pc))
	pc = Union(NewNameMatch("Save"), True())
	assert.True(t, IsTrue(pc))
}

func TestIntersectionSentinelIdentity(t *testing.T) {
	name := NewNameMatch("Save")
	pc := Intersection(True(), name)
	assert.Equal(t, types.Pointcut(name), pc)
	pc = Intersection(name, True())
	assert.Equal(t, types.Pointcut(name), pc)
	assert.True(t, IsTrue(Intersection(True(), nil)))
}

func TestIntersectionBothSides(t *testing.T) {
	a := New(ClassFilterFor(orderServiceType), NewNameMatch("Save").MethodMatcher())
	b := New(nil, NewNameMatch("Sa*").MethodMatcher())
	pc := Intersection(a, b)
	assert.True(t, pc.ClassFilter().Matches(orderServiceType))
	assert.False(t, pc.ClassFilter().Matches(accountServiceType))
	assert.True(t, pc.MethodMatcher().Matches(methodNamed(t, "Save"), orderServiceType))
	assert.False(t, pc.MethodMatcher().Matches(methodNamed(t, "Get"), orderServiceType))
}
