// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package display

import (
	"context"
	"strconv"
	"sync"

	"github.com/orbs-network/orbs-counter-go/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-go/instrumentation/trace"
	"github.com/orbs-network/scribe/log"
)

type CounterClient interface {
	Read(ctx context.Context) (uint32, error)
	IncrementByOne(ctx context.Context) (uint32, error)
	IncrementByN(ctx context.Context, n uint32) (uint32, error)
}

// Result is what the page shows: a value, or nothing together with the reason
type Result struct {
	Value *uint32
	Err   error
}

func (r Result) String() string {
	if r.Value == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*r.Value), 10)
}

func (r Result) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

type metrics struct {
	invalidInputs *metric.Gauge
	failedCalls   *metric.Gauge
}

type Service struct {
	client CounterClient
	logger log.Logger

	writeMutex sync.Mutex

	lastKnown struct {
		sync.RWMutex
		value *uint32
	}

	metrics *metrics
}

func NewService(client CounterClient, parentLogger log.Logger, metricFactory metric.Factory) *Service {
	return &Service{
		client: client,
		logger: parentLogger.WithTags(log.String("service", "display")),
		metrics: &metrics{
			invalidInputs: metricFactory.NewGauge("Display.InvalidInputs.Count"),
			failedCalls:   metricFactory.NewGauge("Display.FailedCalls.Count"),
		},
	}
}

func (s *Service) ReadCounter(ctx context.Context) Result {
	value, err := s.client.Read(ctx)
	return s.result(ctx, "readCounter", value, err)
}

func (s *Service) IncrementByOne(ctx context.Context) Result {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	value, err := s.client.IncrementByOne(ctx)
	return s.result(ctx, "incrementByOne", value, err)
}

// IncrementByN parses the user's text before anything is sent
func (s *Service) IncrementByN(ctx context.Context, text string) Result {
	increment, err := ParseIncrement(text)
	if err != nil {
		s.metrics.invalidInputs.Inc()
		s.logger.Info("rejected increment", trace.LogFieldFrom(ctx), log.String("input", text), log.Error(err))
		return Result{Err: err}
	}

	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	value, err := s.client.IncrementByN(ctx, uint32(increment))
	return s.result(ctx, "incrementByN", value, err)
}

// LastKnown is the most recent value any call returned
func (s *Service) LastKnown() (uint32, bool) {
	s.lastKnown.RLock()
	defer s.lastKnown.RUnlock()

	if s.lastKnown.value == nil {
		return 0, false
	}
	return *s.lastKnown.value, true
}

func (s *Service) result(ctx context.Context, method string, value uint32, err error) Result {
	if err != nil {
		s.metrics.failedCalls.Inc()
		s.logger.Error("counter call failed", trace.LogFieldFrom(ctx), logfields.Method(method), log.Error(err))
		return Result{Err: err}
	}

	s.lastKnown.Lock()
	s.lastKnown.value = &value
	s.lastKnown.Unlock()

	return Result{Value: &value}
}
