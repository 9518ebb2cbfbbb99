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
	"testing"

	"github.com/aopkit/aopkit/test/assert"
)

func TestNameMatchExact(t *testing.T) {
	pc := NewNameMatch("Save")
	assert.True(t, pc.Matches(methodNamed(t, "Save"), orderServiceType))
	assert.False(t, pc.Matches(methodNamed(t, "Get"), orderServiceType))
	assert.False(t, pc.IsRuntime())
}

func TestNameMatchWildcards(t *testing.T) {
	cases := []struct {
		pattern string
		name    string
		matches bool
	}{
		{"*", "Anything", true},
		{"Get*", "GetOrder", true},
		{"Get*", "Order", false},
		{"*Order", "SaveOrder", true},
		{"*Order", "OrderList", false},
		{"*Save*", "BulkSaveAll", true},
		{"*Save*", "Load", false},
		{"Save", "Save", true},
		{"Save", "SaveAll", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.matches, simpleMatch(c.pattern, c.name), c.pattern, c.name)
	}
}

func TestNameMatchMultiplePatterns(t *testing.T) {
	pc := NewNameMatch("Save", "Delete")
	assert.True(t, pc.Matches(methodNamed(t, "Save"), orderServiceType))
	assert.True(t, pc.Matches(methodNamed(t, "Delete"), orderServiceType))
	assert.False(t, pc.Matches(methodNamed(t, "Get"), orderServiceType))
}

func TestNameMatchAddPattern(t *testing.T) {
	pc := NewNameMatch("Save").AddPattern("Get*")
	assert.True(t, pc.Matches(methodNamed(t, "Get"), orderServiceType))
	assert.True(t, pc.MatchesArgs(methodNamed(t, "Save"), orderServiceType, nil))
}

func TestNameMatchClassFilterIsTrue(t *testing.T) {
	pc := NewNameMatch("Save")
	assert.True(t, pc.ClassFilter().Matches(accountServiceType))
}
