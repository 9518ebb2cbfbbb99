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
	"strings"

	"github.com/aopkit/aopkit/api/types"
)

// NameMatch is a static pointcut selecting methods by name. Patterns are
// exact names or simple wildcards: "Get*", "*Order", "*Save*".
//
// NameMatch 是按方法名选择方法的静态切点。模式为精确名称或简单通配符："Get*"、"*Order"、"*Save*"。
type NameMatch struct {
	patterns []string
}

var _ types.Pointcut = (*NameMatch)(nil)
var _ types.MethodMatcher = (*NameMatch)(nil)

// NewNameMatch creates a name-matching pointcut for the given patterns.
func NewNameMatch(patterns ...string) *NameMatch {
	return &NameMatch{patterns: patterns}
}

// AddPattern appends a pattern, returning the pointcut for chaining.
func (p *NameMatch) AddPattern(pattern string) *NameMatch {
	p.patterns = append(p.patterns, pattern)
	return p
}

func (p *NameMatch) ClassFilter() types.ClassFilter     { return TrueClassFilter }
func (p *NameMatch) MethodMatcher() types.MethodMatcher { return p }

func (p *NameMatch) Matches(method types.Method, _ reflect.Type) bool {
	for _, pattern := range p.patterns {
		if simpleMatch(pattern, method.Name) {
			return true
		}
	}
	return false
}

func (p *NameMatch) IsRuntime() bool { return false }

func (p *NameMatch) MatchesArgs(method types.Method, targetClass reflect.Type, _ []interface{}) bool {
	return p.Matches(method, targetClass)
}

// simpleMatch checks a name against a pattern supporting leading and
// trailing "*" wildcards.
func simpleMatch(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	first := strings.HasPrefix(pattern, "*")
	last := strings.HasSuffix(pattern, "*")
	switch {
	case first && last:
		return strings.Contains(name, pattern[1:len(pattern)-1])
	case first:
		return strings.HasSuffix(name, pattern[1:])
	case last:
		return strings.HasPrefix(name, pattern[:len(pattern)-1])
	default:
		return pattern == name
	}
}
