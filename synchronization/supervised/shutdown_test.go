// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package supervised

import (
	"context"
	"github.com/orbs-network/orbs-counter-go/test/with"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
	"time"
)

type fakeShutdowner struct {
	shutdown chan struct{}
	deadline time.Time
}

func (f *fakeShutdowner) GracefulShutdown(shutdownContext context.Context) {
	f.deadline, _ = shutdownContext.Deadline()
	close(f.shutdown)
}

func (f *fakeShutdowner) WaitUntilShutdown(shutdownContext context.Context) {
	select {
	case <-f.shutdown:
	case <-shutdownContext.Done():
	}
}

func TestShutdownGracefully_PassesDeadline(t *testing.T) {
	s := &fakeShutdowner{shutdown: make(chan struct{})}

	before := time.Now()
	ShutdownGracefully(s, time.Minute)

	require.True(t, s.deadline.After(before.Add(59*time.Second)), "shutdown context should carry the timeout")
}

func TestOSShutdownListener_ShutsDownOnSignal(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		s := &fakeShutdowner{shutdown: make(chan struct{})}
		listener := NewShutdownListener(harness.Logger, s, time.Second)
		listener.ListenToOSShutdownSignal()

		listener.signals <- os.Interrupt

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		s.WaitUntilShutdown(ctx)
		require.NoError(t, ctx.Err(), "shutdown should have happened before the timeout")
	})
}
