// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"testing"
	"time"

	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/orbs-counter-go/services/counterclient"
	"github.com/orbs-network/orbs-counter-go/synchronization/supervised"
	"github.com/orbs-network/orbs-counter-go/test/with"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"
)

var testKey = ed25519.NewKeyFromSeed(bytes.Repeat([]byte{9}, ed25519.SeedSize))

func TestNewNode_FailsOnIncompleteConfig(t *testing.T) {
	with.Logging(t, func(h *with.LoggingHarness) {
		cfg := config.ForAcceptanceTests("", "", testKey)

		_, err := NewNodeWithOrbsClient(cfg, h.Logger, &counterclient.MockOrbsClient{})
		require.Error(t, err)
		require.Contains(t, err.Error(), config.JSON_RPC_URL_PUBLIC)
		require.Contains(t, err.Error(), config.CONTRACT_ADDRESS)
	})
}

func TestNewNode_ServesUntilGracefulShutdown(t *testing.T) {
	with.Logging(t, func(h *with.LoggingHarness) {
		cfg := config.ForAcceptanceTests("http://localhost:8080", "Counter", testKey)

		node, err := NewNodeWithOrbsClient(cfg, h.Logger, &counterclient.MockOrbsClient{})
		require.NoError(t, err)
		require.NotZero(t, node.Port())

		res, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/status", node.Port()))
		require.NoError(t, err)
		res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		supervised.ShutdownGracefully(node, time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		node.WaitUntilShutdown(ctx)
		require.NoError(t, ctx.Err(), "node should have shut down before the deadline")
	})
}

func TestNewNode_ExportsConfigAndSystemMetrics(t *testing.T) {
	with.Logging(t, func(h *with.LoggingHarness) {
		cfg := config.ForAcceptanceTests("http://localhost:8080", "Counter", testKey)
		cfg.SetDuration(config.METRICS_REPORT_INTERVAL, 10*time.Millisecond)

		node, err := NewNodeWithOrbsClient(cfg, h.Logger, &counterclient.MockOrbsClient{})
		require.NoError(t, err)
		defer supervised.ShutdownGracefully(node, time.Second)

		res, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/metrics", node.Port()))
		require.NoError(t, err)
		body, err := ioutil.ReadAll(res.Body)
		res.Body.Close()
		require.NoError(t, err)

		require.Contains(t, string(body), "Version.Semantic")
		require.Contains(t, string(body), "Counter.Contract.Name")
		require.Contains(t, string(body), node.Logic().CounterClient().SignerAddress())
		require.Contains(t, string(body), "OS.Process.Memory.Bytes")
	})
}
