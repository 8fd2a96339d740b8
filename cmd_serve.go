// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"context"

	"github.com/orbs-network/orbs-counter-go/bootstrap"
	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/orbs-counter-go/instrumentation"
	"github.com/orbs-network/orbs-counter-go/synchronization/supervised"
	"github.com/orbs-network/scribe/log"
	"github.com/spf13/cobra"
)

func (cl *commandLine) serve(cmd *cobra.Command, args []string) error {
	crashLogger := instrumentation.GetBootstrapCrashLogger()

	cfg, err := config.GetNodeConfig(cl.configFiles, cl.lookupEnv)
	if err != nil {
		crashLogger.Error("error reading configuration", log.Error(err))
		return err
	}

	logger := instrumentation.GetLogger(cl.logPath, cl.silent, cfg)

	node, err := bootstrap.NewNodeWithOrbsClient(cfg, logger, cl.newOrbsClient(cfg.Endpoint(), cfg.VirtualChainId()))
	if err != nil {
		crashLogger.Error("error starting node", log.Error(err))
		return err
	}

	supervised.NewShutdownListener(logger, node, cfg.ShutdownGracePeriod()).ListenToOSShutdownSignal()

	node.WaitUntilShutdown(context.Background())
	return nil
}
