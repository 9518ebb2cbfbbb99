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

package aopkit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aopkit/aopkit/adapter"
	"github.com/aopkit/aopkit/advisor"
	"github.com/aopkit/aopkit/api/types"
	"github.com/aopkit/aopkit/builtin/advice"
	"github.com/aopkit/aopkit/pointcut"
	"github.com/aopkit/aopkit/target"
	"github.com/aopkit/aopkit/test/assert"
)

var errNoStock = errors.New("out of stock")

type orderService struct {
	orders map[string]int
}

func newOrderService() *orderService {
	return &orderService{orders: map[string]int{}}
}

func (s *orderService) Place(id string, qty int) (int, error) {
	if qty > 100 {
		return 0, errNoStock
	}
	s.orders[id] = qty
	return qty, nil
}

func (s *orderService) Get(id string) (int, error) {
	return s.orders[id], nil
}

type auditBefore struct {
	seen []string
}

func (a *auditBefore) Before(_ context.Context, method types.Method, _ []interface{}, _ interface{}) error {
	a.seen = append(a.seen, method.Name)
	return nil
}

func TestNewProxyWithBareAdvice(t *testing.T) {
	audit := &auditBefore{}
	p, err := NewProxy(newOrderService(), audit)
	assert.Nil(t, err)

	result, err := p.Call(context.Background(), "Place", "o1", 3)
	assert.Nil(t, err)
	assert.Equal(t, []interface{}{3}, result)
	assert.Equal(t, []string{"Place"}, audit.seen)
}

func TestNewProxyWithPointcutAdvisor(t *testing.T) {
	audit := &auditBefore{}
	p, err := NewProxy(newOrderService(),
		advisor.New(pointcut.NewNameMatch("Place"), audit))
	assert.Nil(t, err)

	_, _ = p.Call(context.Background(), "Get", "o1")
	assert.Equal(t, 0, len(audit.seen))

	_, _ = p.Call(context.Background(), "Place", "o1", 2)
	assert.Equal(t, []string{"Place"}, audit.seen)
}

func TestNewProxyUnknownAdviceFailsAtConfiguration(t *testing.T) {
	_, err := NewProxy(newOrderService(), "not advice")
	assert.NotNil(t, err)
}

func TestNewProxyWithConfigAndScriptFilter(t *testing.T) {
	config := NewConfig(types.WithScriptMaxExecutionTime(time.Second))
	filter, err := advice.NewScriptFilter(config, `
		function Filter(method, args) {
			if (method != "Place") return true;
			return args[1] <= 10;
		}
	`)
	assert.Nil(t, err)

	p, err := NewProxyWithConfig(config, newOrderService(), filter)
	assert.Nil(t, err)

	_, err = p.Call(context.Background(), "Place", "o1", 5)
	assert.Nil(t, err)
	_, err = p.Call(context.Background(), "Place", "o2", 50)
	assert.True(t, errors.Is(err, advice.ErrScriptRejected))
}

func TestNewProxyFromSource(t *testing.T) {
	created := 0
	source := target.NewPrototype(func() (interface{}, error) {
		created++
		return newOrderService(), nil
	})
	p, err := NewProxyFromSource(NewConfig(), source, advice.NewMetrics())
	assert.Nil(t, err)

	_, err = p.Call(context.Background(), "Place", "o1", 1)
	assert.Nil(t, err)
	_, err = p.Call(context.Background(), "Place", "o2", 1)
	assert.Nil(t, err)
	assert.Equal(t, 2, created)
}

func TestThrowsAdviceObservesFailure(t *testing.T) {
	var observed error
	throws := adapter.NewThrows().On(errNoStock,
		func(_ context.Context, _ types.Method, _ []interface{}, _ interface{}, err error) {
			observed = err
		})
	p, err := NewProxy(newOrderService(), throws)
	assert.Nil(t, err)

	_, err = p.Call(context.Background(), "Place", "o1", 500)
	assert.True(t, errors.Is(err, errNoStock))
	assert.True(t, errors.Is(observed, errNoStock))
}

func TestEndToEndChain(t *testing.T) {
	audit := &auditBefore{}
	limiter := advice.NewConcurrencyLimiter(8)
	metrics := advice.NewMetrics()

	p, err := NewProxy(newOrderService(),
		advisor.New(nil, limiter).WithOrder(-10),
		advisor.New(nil, metrics),
		advisor.New(pointcut.NewNameMatch("Place"), audit).WithOrder(10),
	)
	assert.Nil(t, err)

	result, err := p.Call(context.Background(), "Place", "o1", 7)
	assert.Nil(t, err)
	assert.Equal(t, []interface{}{7}, result)

	got, err := p.CallOne(context.Background(), "Get", "o1")
	assert.Nil(t, err)
	assert.Equal(t, 7, got)

	assert.Equal(t, []string{"Place"}, audit.seen)
	assert.Equal(t, int64(2), metrics.Get().Total)
	assert.Equal(t, int64(2), p.Metrics().Total)
}
