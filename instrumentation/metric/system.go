// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/c9s/goprocinfo/linux"
	"github.com/orbs-network/orbs-counter-go/synchronization"
	"github.com/orbs-network/scribe/log"
)

const PAGESIZE = 4096

type systemMetrics struct {
	rssBytes       *Gauge
	cpuUtilization *Gauge
}

type cpuSample struct {
	processTicks int64
	totalTicks   uint64
}

// systemReporter samples /proc on every tick; cpu utilization is the process share of all cpu ticks since the previous sample
type systemReporter struct {
	pid      uint64
	procPath string
	metrics  systemMetrics
	previous *cpuSample
}

func newSystemReporter(metricFactory Factory, procPath string) *systemReporter {
	return &systemReporter{
		pid:      uint64(os.Getpid()),
		procPath: procPath,
		metrics: systemMetrics{
			rssBytes:       metricFactory.NewGauge("OS.Process.Memory.Bytes"),
			cpuUtilization: metricFactory.NewGauge("OS.Process.CPU.PerCent"),
		},
	}
}

// NewSystemReporter does nothing on hosts without procfs
func NewSystemReporter(ctx context.Context, metricFactory Factory, interval time.Duration, logger log.Logger) *synchronization.PeriodicalTrigger {
	r := newSystemReporter(metricFactory, "/proc")
	return synchronization.NewPeriodicalTrigger(ctx, "system-metrics-reporter", interval, logger, func() {
		r.report(logger)
	}, nil)
}

func (r *systemReporter) report(logger log.Logger) {
	if _, err := os.Stat(r.procPath); os.IsNotExist(err) {
		return
	}

	if rss, err := r.rssMemory(); err != nil {
		logger.Error("failed to retrieve memory stats", log.Error(err))
	} else {
		r.metrics.rssBytes.Update(rss)
	}

	sample, err := r.sampleCpu()
	if err != nil {
		logger.Error("failed to retrieve cpu stats", log.Error(err))
		return
	}

	if r.previous != nil && sample.totalTicks > r.previous.totalTicks {
		percent := float64(sample.processTicks-r.previous.processTicks) / float64(sample.totalTicks-r.previous.totalTicks) * 100
		r.metrics.cpuUtilization.Update(int64(percent))
	}
	r.previous = sample
}

func (r *systemReporter) rssMemory() (int64, error) {
	statm, err := linux.ReadProcessStatm(fmt.Sprintf("%s/%d/statm", r.procPath, r.pid))
	if err != nil {
		return 0, err
	}

	return int64(statm.Resident * PAGESIZE), nil
}

func (r *systemReporter) sampleCpu() (*cpuSample, error) {
	process, err := linux.ReadProcess(r.pid, r.procPath)
	if err != nil {
		return nil, err
	}

	stat, err := linux.ReadStat(r.procPath + "/stat")
	if err != nil {
		return nil, err
	}

	all := stat.CPUStatAll
	return &cpuSample{
		processTicks: int64(process.Stat.Utime) + process.Stat.Cutime + int64(process.Stat.Stime) + process.Stat.Cstime,
		totalTicks:   all.User + all.Nice + all.System + all.Idle,
	}, nil
}
