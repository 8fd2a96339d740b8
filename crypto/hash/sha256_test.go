// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package hash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalcSha256_MatchesKnownDigest(t *testing.T) {
	expected := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	require.Equal(t, expected, hex.EncodeToString(CalcSha256([]byte("hello"))))
}

func TestCalcSha256_HashesPartsAsOneMessage(t *testing.T) {
	require.Equal(t, CalcSha256([]byte("hello")), CalcSha256([]byte("he"), []byte("llo")))
	require.Len(t, CalcSha256(), SHA256_HASH_SIZE_BYTES)
}
