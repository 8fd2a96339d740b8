// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"context"
	"fmt"
	"github.com/orbs-network/orbs-counter-go/synchronization"
	"github.com/orbs-network/scribe/log"
	"sort"
	"sync"
	"time"
)

type Factory interface {
	NewLatency(name string, maxDuration time.Duration) *Histogram
	NewGauge(name string) *Gauge
	NewRate(name string) *Rate
	NewText(name string, defaultValue ...string) *Text
}

type Registry interface {
	Factory
	String() string
	Get(name string) metric
	ExportAll() map[string]exportedMetric
	ExportPrometheus() string
	WithVirtualChainId(id uint32) Registry
	WithContractName(name string) Registry
	PeriodicallyReport(ctx context.Context, interval time.Duration, logger log.Logger) *synchronization.PeriodicalTrigger
}

type exportedMetric interface {
	LogRow() []*log.Field
}

type metric interface {
	fmt.Stringer
	Name() string
	Export() exportedMetric
	exportPrometheus(labelString string) string
}

type namedMetric struct {
	name  string
	pName string
}

func newNamedMetric(name string) namedMetric {
	return namedMetric{name: name, pName: prometheusName(name)}
}

func (m *namedMetric) Name() string {
	return m.name
}

func NewRegistry() Registry {
	return &inMemoryRegistry{
		metrics: make(map[string]metric),
	}
}

type inMemoryRegistry struct {
	sync.RWMutex
	metrics      map[string]metric
	vcid         uint32
	contractName string
}

func (r *inMemoryRegistry) WithVirtualChainId(id uint32) Registry {
	r.vcid = id
	return r
}

func (r *inMemoryRegistry) WithContractName(name string) Registry {
	r.contractName = name
	return r
}

// registering a name twice returns the metric registered first
func (r *inMemoryRegistry) register(m metric) metric {
	r.Lock()
	defer r.Unlock()

	if existing, found := r.metrics[m.Name()]; found {
		return existing
	}
	r.metrics[m.Name()] = m
	return m
}

func (r *inMemoryRegistry) Get(name string) metric {
	r.RLock()
	defer r.RUnlock()

	return r.metrics[name]
}

func (r *inMemoryRegistry) NewRate(name string) *Rate {
	return r.register(newRate(name)).(*Rate)
}

func (r *inMemoryRegistry) NewGauge(name string) *Gauge {
	return r.register(&Gauge{namedMetric: newNamedMetric(name)}).(*Gauge)
}

func (r *inMemoryRegistry) NewLatency(name string, maxDuration time.Duration) *Histogram {
	return r.register(newHistogram(name, maxDuration.Nanoseconds())).(*Histogram)
}

func (r *inMemoryRegistry) NewText(name string, defaultValue ...string) *Text {
	return r.register(newText(name, defaultValue...)).(*Text)
}

func (r *inMemoryRegistry) sortedMetrics() []metric {
	r.RLock()
	defer r.RUnlock()

	var sorted []metric
	for _, m := range r.metrics {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name() < sorted[j].Name()
	})
	return sorted
}

func (r *inMemoryRegistry) String() string {
	var s string
	for _, m := range r.sortedMetrics() {
		s += m.String()
	}

	return s
}

func (r *inMemoryRegistry) ExportAll() map[string]exportedMetric {
	all := make(map[string]exportedMetric)
	for _, m := range r.sortedMetrics() {
		all[m.Name()] = m.Export()
	}

	return all
}

func (r *inMemoryRegistry) report(logger log.Logger) {
	for _, m := range r.sortedMetrics() {
		if logRow := m.Export().LogRow(); logRow != nil {
			logger.Metric(logRow...)
		}
	}
}

func (r *inMemoryRegistry) rotateHistograms() {
	for _, m := range r.sortedMetrics() {
		if h, ok := m.(*Histogram); ok {
			h.Rotate()
		}
	}
}

func (r *inMemoryRegistry) PeriodicallyReport(ctx context.Context, interval time.Duration, logger log.Logger) *synchronization.PeriodicalTrigger {
	return synchronization.NewPeriodicalTrigger(ctx, "metric-reporter", interval, logger, func() {
		r.report(logger)
		r.rotateHistograms()
	}, func() {
		r.report(logger)
	})
}
