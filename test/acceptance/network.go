// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package acceptance

import (
	"bytes"
	"context"
	"time"

	"github.com/orbs-network/orbs-counter-go/bootstrap"
	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/orbs-counter-go/synchronization/supervised"
	"github.com/orbs-network/orbs-counter-go/test/harness/api"
	"github.com/orbs-network/orbs-counter-go/test/harness/chain"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
)

const CONTRACT_NAME = "Counter"

// Network is one display node talking to an in-process chain
type Network struct {
	Chain *chain.Chain
	Node  *bootstrap.Node
	Api   *api.Client

	cancel context.CancelFunc
}

func NewNetwork(logger log.Logger) (*Network, error) {
	ctx, cancel := context.WithCancel(context.Background())

	privateKey := ed25519.NewKeyFromSeed(bytes.Repeat([]byte{42}, ed25519.SeedSize))
	cfg := config.ForAcceptanceTests("in-process", CONTRACT_NAME, privateKey)

	inProcessChain := chain.NewChain(ctx, logger)
	node, err := bootstrap.NewNodeWithOrbsClient(cfg, logger, inProcessChain)
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "failed to start node")
	}

	return &Network{
		Chain:  inProcessChain,
		Node:   node,
		Api:    api.NewLocalClient(node.Port()),
		cancel: cancel,
	}, nil
}

func (n *Network) Deploy(ctx context.Context) error {
	return n.Node.Logic().CounterClient().Deploy(ctx)
}

func (n *Network) Destroy() {
	supervised.ShutdownGracefully(n.Node, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	n.Node.WaitUntilShutdown(ctx)

	n.cancel()
}
