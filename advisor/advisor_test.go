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

package advisor

import (
	"context"
	"reflect"
	"testing"

	"github.com/aopkit/aopkit/api/types"
	"github.com/aopkit/aopkit/pointcut"
	"github.com/aopkit/aopkit/test/assert"
)

func TestNewDefaultsToMatchAll(t *testing.T) {
	adv := New(nil, "advice")
	assert.True(t, pointcut.IsTrue(adv.Pointcut()))
	assert.Equal(t, "advice", adv.Advice())
	assert.Equal(t, 0, adv.Order())
	assert.False(t, adv.PerInstance())
}

func TestWithOrderAndPerInstance(t *testing.T) {
	pc := pointcut.NewNameMatch("Save")
	adv := New(pc, "advice").WithOrder(-10).WithPerInstance()
	assert.Equal(t, types.Pointcut(pc), adv.Pointcut())
	assert.Equal(t, -10, adv.Order())
	assert.True(t, adv.PerInstance())
}

func TestSortAscendingAndStable(t *testing.T) {
	a := New(nil, "a").WithOrder(10)
	b := New(nil, "b").WithOrder(-5)
	c := New(nil, "c").WithOrder(10)
	d := New(nil, "d")

	sorted := Sort([]types.Advisor{a, b, c, d})
	assert.Equal(t, "b", sorted[0].Advice())
	assert.Equal(t, "d", sorted[1].Advice())
	// Equal orders keep declaration order.
	assert.Equal(t, "a", sorted[2].Advice())
	assert.Equal(t, "c", sorted[3].Advice())

	// The input slice is untouched.
	assert.Equal(t, "a", []types.Advisor{a, b, c, d}[0].Advice())
}

func TestIntroductionAdvisor(t *testing.T) {
	filter := types.ClassFilterFunc(func(class reflect.Type) bool {
		return class != nil && class.Kind() == reflect.Ptr
	})
	intro := NewIntroduction(filter).
		AddMethod("Describe", func(_ context.Context, _ []interface{}) ([]interface{}, error) {
			return []interface{}{"described"}, nil
		}).
		WithOrder(5)

	assert.Equal(t, 5, intro.Order())
	assert.False(t, intro.PerInstance())
	assert.Equal(t, 1, len(intro.Methods()))
	assert.NotNil(t, intro.Methods()["Describe"])
	assert.True(t, intro.ClassFilter().Matches(reflect.TypeOf(&struct{}{})))
	assert.False(t, intro.ClassFilter().Matches(reflect.TypeOf(1)))
}

func TestIntroductionNilFilterMatchesAll(t *testing.T) {
	intro := NewIntroduction(nil)
	assert.True(t, intro.ClassFilter().Matches(reflect.TypeOf(1)))
}
