// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"

	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-counter-go/bootstrap/httpserver"
	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/orbs-counter-go/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-go/services/counterclient"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

// Node is the display service: the counter client, the page and its HTTP API, under one supervisor
type Node struct {
	govnr.TreeSupervisor
	logger     log.Logger
	cancel     context.CancelFunc
	logic      NodeLogic
	httpServer *httpserver.HttpServer
}

func NewNode(nodeConfig config.NodeConfig, logger log.Logger) (*Node, error) {
	return NewNodeWithOrbsClient(nodeConfig, logger, counterclient.NewOrbsClient(nodeConfig.Endpoint(), nodeConfig.VirtualChainId()))
}

func NewNodeWithOrbsClient(nodeConfig config.NodeConfig, logger log.Logger, orbs counterclient.OrbsClient) (*Node, error) {
	if err := config.Validate(nodeConfig); err != nil {
		return nil, err
	}

	nodeLogger := logger.WithTags(logfields.VirtualChainId(nodeConfig.VirtualChainId()), logfields.Contract(nodeConfig.ContractName()))
	metricRegistry := metric.NewRegistry().WithVirtualChainId(nodeConfig.VirtualChainId()).WithContractName(nodeConfig.ContractName())

	ctx, cancel := context.WithCancel(context.Background())
	logic := NewNodeLogic(ctx, orbs, nodeLogger, metricRegistry, nodeConfig)

	httpServer, err := httpserver.NewHttpServer(nodeConfig, nodeLogger, logic.Display(), metricRegistry)
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "failed to create node")
	}

	n := &Node{
		logger:     nodeLogger,
		cancel:     cancel,
		logic:      logic,
		httpServer: httpServer,
	}
	n.Supervise(logic)
	n.Supervise(httpServer)

	return n, nil
}

func (n *Node) GracefulShutdown(shutdownContext context.Context) {
	n.logger.Info("shutting down")
	n.cancel()
	n.httpServer.GracefulShutdown(shutdownContext)
}

func (n *Node) Port() int {
	return n.httpServer.Port()
}

func (n *Node) Logic() NodeLogic {
	return n.logic
}
