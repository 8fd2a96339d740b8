// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package e2e

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	orbsClient "github.com/orbs-network/orbs-client-sdk-go/orbs"
	"github.com/orbs-network/orbs-counter-go/bootstrap"
	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/orbs-counter-go/synchronization/supervised"
	"github.com/orbs-network/orbs-counter-go/test"
	"github.com/orbs-network/orbs-counter-go/test/harness/api"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
)

func virtualChainId(t *testing.T) uint32 {
	value := os.Getenv(config.VIRTUAL_CHAIN_ID)
	if value == "" {
		return 42
	}

	vcid, err := strconv.ParseUint(value, 10, 32)
	require.NoError(t, err, "%s must be a uint32", config.VIRTUAL_CHAIN_ID)
	return uint32(vcid)
}

func result(t *testing.T, response *api.Response, err error) string {
	require.NoError(t, err)
	require.Empty(t, response.Error)
	return response.Result
}

// Runs against a live node, e.g. a local gamma server: API_ENDPOINT=http://localhost:8080
func TestCounterDisplayAgainstLiveNode(t *testing.T) {
	endpoint := os.Getenv("API_ENDPOINT")
	if endpoint == "" {
		t.Skip("API_ENDPOINT not provided, skipping e2e test against a live node")
	}

	account, err := orbsClient.CreateAccount()
	require.NoError(t, err)

	contractName := fmt.Sprintf("Counter%s", strings.Replace(uuid.New().String(), "-", "", -1)[:12])
	cfg := config.ForE2E(endpoint, virtualChainId(t), contractName, account.PrivateKey)

	logger := log.GetLogger().WithTags(log.String("_test", "e2e")).WithOutput(log.NewFormattingOutput(os.Stdout, log.NewHumanReadableFormatter()))
	node, err := bootstrap.NewNode(cfg, logger)
	require.NoError(t, err)
	defer supervised.ShutdownGracefully(node, 5*time.Second)

	test.WithContextWithTimeout(time.Minute, func(ctx context.Context) {
		require.NoError(t, node.Logic().CounterClient().Deploy(ctx), "failed deploying %s", contractName)
	})

	client := api.NewLocalClient(node.Port())

	response, err := client.ReadCounter()
	test.RequireCmpEqual(t, "0", result(t, response, err))

	response, err = client.IncrementByOne()
	test.RequireCmpEqual(t, "1", result(t, response, err))

	response, err = client.IncrementByN(5)
	test.RequireCmpEqual(t, "6", result(t, response, err))

	response, err = client.ReadCounter()
	test.RequireCmpEqual(t, "6", result(t, response, err))
}
