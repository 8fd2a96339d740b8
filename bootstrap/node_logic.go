// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"

	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-go/services/counterclient"
	"github.com/orbs-network/orbs-counter-go/services/display"
	"github.com/orbs-network/scribe/log"
)

type NodeLogic interface {
	govnr.ShutdownWaiter
	CounterClient() *counterclient.Client
	Display() *display.Service
}

type nodeLogic struct {
	govnr.TreeSupervisor
	counterClient *counterclient.Client
	display       *display.Service
}

func NewNodeLogic(ctx context.Context, orbs counterclient.OrbsClient, logger log.Logger, metricRegistry metric.Registry, nodeConfig config.NodeConfig) NodeLogic {
	counterClient := counterclient.NewClient(orbs, nodeConfig, logger, metricRegistry)
	displayService := display.NewService(counterClient, logger, metricRegistry)

	logic := &nodeLogic{
		counterClient: counterClient,
		display:       displayService,
	}

	metric.RegisterConfigIndicators(metricRegistry, nodeConfig, counterClient.SignerAddress())

	if interval := nodeConfig.MetricsReportInterval(); interval > 0 {
		logic.Supervise(metric.NewSystemReporter(ctx, metricRegistry, interval, logger))
		logic.Supervise(metricRegistry.PeriodicallyReport(ctx, interval, logger))
	}

	return logic
}

func (n *nodeLogic) CounterClient() *counterclient.Client {
	return n.counterClient
}

func (n *nodeLogic) Display() *display.Service {
	return n.display
}
