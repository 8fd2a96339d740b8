// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestHistogram_RecordsInMillis(t *testing.T) {
	h := newHistogram("Request.Latency", int64(time.Minute))

	for i := 1; i <= 100; i++ {
		h.Record(int64(i) * int64(time.Millisecond))
	}

	e := h.export()
	require.EqualValues(t, 100, e.Samples)
	require.InDelta(t, 1, e.Min, 0.01)
	require.InDelta(t, 100, e.Max, 0.1)
	require.InDelta(t, 50.5, e.Avg, 0.1)
	require.NotNil(t, e.LogRow())
}

func TestHistogram_CountsOverflows(t *testing.T) {
	h := newHistogram("Request.Latency", int64(time.Second))

	h.Record(int64(time.Hour))

	require.EqualValues(t, 0, h.CurrentSamples())
	require.Contains(t, h.String(), "overflows=1")
}

func TestHistogram_EmptyHasNoLogRow(t *testing.T) {
	h := newHistogram("Request.Latency", int64(time.Second))

	require.Nil(t, h.export().LogRow())
	require.Empty(t, h.exportPrometheus(""))
}

func TestHistogram_RotateKeepsRecentWindows(t *testing.T) {
	h := newHistogram("Request.Latency", int64(time.Second))
	h.Record(int64(time.Millisecond))

	h.Rotate()

	require.EqualValues(t, 0, h.CurrentSamples(), "current window should be fresh after rotation")
	require.EqualValues(t, 1, h.export().Samples, "export should merge the previous windows")
}
