// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package acceptance

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/orbs-network/orbs-counter-go/test/harness/api"
	"github.com/orbs-network/orbs-counter-go/test/with"
	"github.com/stretchr/testify/require"
)

func withNetwork(t *testing.T, f func(h *with.LoggingHarness, network *Network)) {
	with.Logging(t, func(h *with.LoggingHarness) {
		network, err := NewNetwork(h.Logger)
		require.NoError(t, err)
		defer network.Destroy()

		f(h, network)
	})
}

func requireResult(t *testing.T, expected string, response *api.Response, err error) {
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, response.StatusCode, "unexpected error: %s", response.Error)
	require.Equal(t, expected, response.Result)
	require.Empty(t, response.Error)
}

func TestCounterDisplay_DeployReadAndIncrement(t *testing.T) {
	withNetwork(t, func(h *with.LoggingHarness, network *Network) {
		require.NoError(t, network.Deploy(context.Background()))

		response, err := network.Api.ReadCounter()
		requireResult(t, "0", response, err)

		response, err = network.Api.IncrementByOne()
		requireResult(t, "1", response, err)

		response, err = network.Api.IncrementByN(5)
		requireResult(t, "6", response, err)

		response, err = network.Api.ReadCounter()
		requireResult(t, "6", response, err)
	})
}

func TestCounterDisplay_InvalidIncrementLeavesCounterUntouched(t *testing.T) {
	withNetwork(t, func(h *with.LoggingHarness, network *Network) {
		require.NoError(t, network.Deploy(context.Background()))
		heightBefore := network.Chain.BlockHeight()

		for _, increment := range []interface{}{-1, 1.5, "five", nil} {
			response, err := network.Api.IncrementByN(increment)
			require.NoError(t, err)
			require.Equal(t, http.StatusBadRequest, response.StatusCode, "increment %v should be rejected", increment)
			require.Empty(t, response.Result)
		}

		require.Equal(t, heightBefore, network.Chain.BlockHeight(), "no transaction should have been sent")

		response, err := network.Api.ReadCounter()
		requireResult(t, "0", response, err)
	})
}

func TestCounterDisplay_OverflowIsReportedAndValueKept(t *testing.T) {
	withNetwork(t, func(h *with.LoggingHarness, network *Network) {
		h.AllowErrorsMatching("counter call failed")
		require.NoError(t, network.Deploy(context.Background()))

		response, err := network.Api.IncrementByN(4294967295)
		requireResult(t, "4294967295", response, err)

		response, err = network.Api.IncrementByOne()
		require.NoError(t, err)
		require.Equal(t, http.StatusBadGateway, response.StatusCode)
		require.Empty(t, response.Result)
		require.NotEmpty(t, response.Error)

		response, err = network.Api.ReadCounter()
		requireResult(t, "4294967295", response, err)
	})
}

func TestCounterDisplay_ReadBeforeDeployFails(t *testing.T) {
	withNetwork(t, func(h *with.LoggingHarness, network *Network) {
		h.AllowErrorsMatching("counter call failed")

		response, err := network.Api.ReadCounter()
		require.NoError(t, err)
		require.Equal(t, http.StatusBadGateway, response.StatusCode)
		require.Contains(t, response.Error, "not deployed")
	})
}

func TestCounterDisplay_SecondDeployFails(t *testing.T) {
	withNetwork(t, func(h *with.LoggingHarness, network *Network) {
		h.AllowErrorsMatching("contract deployment failed")

		require.NoError(t, network.Deploy(context.Background()))
		require.Error(t, network.Deploy(context.Background()))
	})
}

func TestCounterDisplay_ConcurrentIncrementsAreAllCounted(t *testing.T) {
	withNetwork(t, func(h *with.LoggingHarness, network *Network) {
		require.NoError(t, network.Deploy(context.Background()))

		const users = 10
		var wg sync.WaitGroup
		for i := 0; i < users; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				response, err := network.Api.IncrementByOne()
				if err != nil || response.StatusCode != http.StatusOK {
					t.Errorf("increment failed: %v %v", err, response)
				}
			}()
		}
		wg.Wait()

		response, err := network.Api.ReadCounter()
		requireResult(t, "10", response, err)
	})
}
