// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"github.com/orbs-network/orbs-counter-go/crypto/hash"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
)

const (
	CLIENT_ADDRESS_SIZE_BYTES    = 20
	CLIENT_ADDRESS_SHA256_OFFSET = hash.SHA256_HASH_SIZE_BYTES - CLIENT_ADDRESS_SIZE_BYTES
)

// CalcClientAddressOfEd25519PublicKey returns the address the node attributes transactions signed by publicKey to
func CalcClientAddressOfEd25519PublicKey(publicKey ed25519.PublicKey) (primitives.ClientAddress, error) {
	if len(publicKey) != ed25519.PublicKeySize {
		return nil, errors.Errorf("public key must be %d bytes long, got %d", ed25519.PublicKeySize, len(publicKey))
	}
	return primitives.ClientAddress(hash.CalcSha256(publicKey)[CLIENT_ADDRESS_SHA256_OFFSET:]), nil
}
