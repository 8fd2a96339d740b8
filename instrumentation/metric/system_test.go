// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"os"
	"testing"

	"github.com/orbs-network/orbs-counter-go/test/with"
	"github.com/stretchr/testify/require"
)

func TestSystemReporter_ReportsProcessMemory(t *testing.T) {
	if _, err := os.Stat("/proc"); os.IsNotExist(err) {
		t.Skip("procfs is not available")
	}

	with.Logging(t, func(harness *with.LoggingHarness) {
		r := NewRegistry()
		reporter := newSystemReporter(r, "/proc")

		reporter.report(harness.Logger)
		reporter.report(harness.Logger)

		require.True(t, r.Get("OS.Process.Memory.Bytes").(*Gauge).Value() > 0, "resident memory should be reported")
		require.NotNil(t, reporter.previous, "cpu sample should be kept for the next tick")
		require.True(t, r.Get("OS.Process.CPU.PerCent").(*Gauge).Value() >= 0)
	})
}

func TestSystemReporter_SkipsHostsWithoutProcfs(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		r := NewRegistry()
		reporter := newSystemReporter(r, "/does/not/exist")

		reporter.report(harness.Logger)

		require.Zero(t, r.Get("OS.Process.Memory.Bytes").(*Gauge).Value())
		require.Nil(t, reporter.previous)
	})
}
