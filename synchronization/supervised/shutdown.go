// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package supervised

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-counter-go/instrumentation/logfields"
	"github.com/orbs-network/scribe/log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type GracefulShutdowner interface {
	govnr.ShutdownWaiter
	GracefulShutdown(shutdownContext context.Context)
}

func ShutdownGracefully(s GracefulShutdowner, timeout time.Duration) {
	shutdownContext, cancel := context.WithTimeout(context.Background(), timeout) // give system some time to gracefully finish
	defer cancel()
	s.GracefulShutdown(shutdownContext)
}

type OSShutdownListener struct {
	Logger     log.Logger
	shutdowner GracefulShutdowner
	timeout    time.Duration
	signals    chan os.Signal
}

func NewShutdownListener(logger log.Logger, shutdowner GracefulShutdowner, timeout time.Duration) *OSShutdownListener {
	return &OSShutdownListener{
		Logger:     logger,
		shutdowner: shutdowner,
		timeout:    timeout,
		signals:    make(chan os.Signal, 1),
	}
}

func (n *OSShutdownListener) ListenToOSShutdownSignal() {
	// if waiting for shutdown, listen for sigint and sigterm
	signal.Notify(n.signals, os.Interrupt, syscall.SIGTERM)
	govnr.Once(logfields.GovnrErrorer(n.Logger), func() {
		sig := <-n.signals
		signal.Stop(n.signals)
		n.Logger.Info("terminating gracefully due to os signal received", log.String("signal", sig.String()))

		ShutdownGracefully(n.shutdowner, n.timeout)
	})
}
