// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package synchronization_test

import (
	"context"
	"github.com/orbs-network/orbs-counter-go/synchronization"
	"github.com/orbs-network/orbs-counter-go/test"
	"github.com/orbs-network/orbs-counter-go/test/with"
	"github.com/stretchr/testify/require"
	"sync/atomic"
	"testing"
	"time"
)

func TestPeriodicalTrigger_FiresRepeatedly(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			var x int32
			p := synchronization.NewPeriodicalTrigger(ctx, "test trigger", time.Millisecond, harness.Logger, func() { atomic.AddInt32(&x, 1) }, nil)
			defer p.Stop()

			require.True(t, test.Eventually(func() bool {
				return atomic.LoadInt32(&x) >= 2
			}), "expected at least two ticks")
		})
	})
}

func TestPeriodicalTrigger_StopRunsOnStopAndHalts(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			var x int32
			stopped := false
			p := synchronization.NewPeriodicalTrigger(ctx, "test trigger", time.Hour, harness.Logger, func() { atomic.AddInt32(&x, 1) }, func() { stopped = true })

			p.Stop()

			require.True(t, stopped, "onStop should have run before Stop returned")
			require.EqualValues(t, 0, atomic.LoadInt32(&x), "expected no ticks")
			require.EqualValues(t, 0, p.TimesTriggered())
		})
	})
}

func TestPeriodicalTrigger_StopsWhenParentContextEnds(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		ctx, cancel := context.WithCancel(context.Background())
		p := synchronization.NewPeriodicalTrigger(ctx, "test trigger", time.Hour, harness.Logger, func() {}, nil)

		cancel()

		select {
		case <-p.Closed:
		case <-time.After(time.Second):
			t.Fatal("trigger did not stop after parent context was cancelled")
		}
	})
}
