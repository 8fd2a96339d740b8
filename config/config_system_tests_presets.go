// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/orbs-network/orbs-counter-go/crypto/encoding"
	"golang.org/x/crypto/ed25519"
	"time"
)

func ForAcceptanceTests(endpoint string, contractName string, privateKey ed25519.PrivateKey) mutableNodeConfig {
	cfg := defaultProductionConfig()

	cfg.SetString(JSON_RPC_URL_PUBLIC, endpoint)
	cfg.SetString(CONTRACT_ADDRESS, contractName)
	cfg.SetString(WALLET_SECRET_KEY, encoding.EncodeHex(privateKey))

	cfg.SetString(HTTP_ADDRESS, "127.0.0.1:0")
	cfg.SetDuration(REQUEST_TIMEOUT, 5*time.Second)
	cfg.SetUint32(COUNTER_CLIENT_MAX_WRITES_PER_SECOND, 0)
	cfg.SetDuration(SHUTDOWN_GRACE_PERIOD, 1*time.Second)
	cfg.SetDuration(METRICS_REPORT_INTERVAL, 0)

	return cfg
}

func ForE2E(endpoint string, virtualChainId uint32, contractName string, privateKey ed25519.PrivateKey) mutableNodeConfig {
	cfg := ForAcceptanceTests(endpoint, contractName, privateKey)

	cfg.SetUint32(VIRTUAL_CHAIN_ID, virtualChainId)
	cfg.SetDuration(REQUEST_TIMEOUT, 30*time.Second)

	return cfg
}
