// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"bytes"
	"testing"

	"github.com/orbs-network/orbs-counter-go/crypto/hash"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"
)

func TestCalcClientAddressOfEd25519PublicKey(t *testing.T) {
	publicKey := ed25519.NewKeyFromSeed(bytes.Repeat([]byte{1}, ed25519.SeedSize)).Public().(ed25519.PublicKey)

	address, err := CalcClientAddressOfEd25519PublicKey(publicKey)
	require.NoError(t, err)
	require.Len(t, address, CLIENT_ADDRESS_SIZE_BYTES)
	require.EqualValues(t, hash.CalcSha256(publicKey)[12:], address, "address is the tail of the public key hash")
}

func TestCalcClientAddressOfEd25519PublicKey_RejectsBadKeys(t *testing.T) {
	_, err := CalcClientAddressOfEd25519PublicKey(nil)
	require.Error(t, err)

	_, err = CalcClientAddressOfEd25519PublicKey(make([]byte, 20))
	require.Error(t, err)
}
