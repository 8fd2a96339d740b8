// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
	"strings"
)

// ValidateCounterClient reports every missing or malformed value the contract client needs;
// callers treat a non-nil result as fatal
func ValidateCounterClient(cfg CounterClientConfig) error {
	var problems []string

	if cfg.Endpoint() == "" {
		problems = append(problems, JSON_RPC_URL_PUBLIC+" is missing")
	}

	if cfg.ContractName() == "" {
		problems = append(problems, CONTRACT_ADDRESS+" is missing")
	}

	if cfg.SignerPrivateKey() == nil {
		problems = append(problems, WALLET_SECRET_KEY+" is missing or is not a hex encoded ed25519 key")
	}

	if cfg.RequestTimeout() <= 0 {
		problems = append(problems, REQUEST_TIMEOUT+" must be positive")
	}

	if len(problems) > 0 {
		return errors.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return nil
}

func Validate(cfg NodeConfig) error {
	if err := ValidateCounterClient(cfg); err != nil {
		return err
	}

	if cfg.HttpAddress() == "" {
		return errors.Errorf("invalid configuration: %s is missing", HTTP_ADDRESS)
	}

	if cfg.ShutdownGracePeriod() <= 0 {
		return errors.Errorf("invalid configuration: %s must be positive", SHUTDOWN_GRACE_PERIOD)
	}

	return nil
}

func errInvalidKeyLength(length int) error {
	return errors.Errorf("secret key must be %d or %d bytes long, got %d", ed25519.SeedSize, ed25519.PrivateKeySize, length)
}

func errMismatchedPublicKey() error {
	return errors.New("secret key does not carry the public key of its seed")
}
