// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package encoding renders keys and addresses as mixed case hex, where the case of each letter carries a sha256 checksum
package encoding

import (
	"encoding/hex"
	"strings"

	"github.com/orbs-network/orbs-counter-go/crypto/hash"
	"github.com/pkg/errors"
)

var ErrInvalidChecksum = errors.New("invalid checksum")

func EncodeHex(data []byte) string {
	return "0x" + withChecksumCase(data)
}

// DecodeHex accepts an optional 0x prefix; on a checksum mismatch the decoded data is returned along with ErrInvalidChecksum.
// Uniformly cased input carries no checksum and is never rejected for it
func DecodeHex(text string) ([]byte, error) {
	text = strings.TrimPrefix(text, "0x")

	data, err := hex.DecodeString(text)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex string")
	}

	if text == strings.ToLower(text) || text == strings.ToUpper(text) {
		return data, nil
	}

	if withChecksumCase(data) != text {
		return data, ErrInvalidChecksum
	}

	return data, nil
}

func withChecksumCase(data []byte) string {
	digits := []byte(hex.EncodeToString(data))
	checksum := hash.CalcSha256(data)

	for i, digit := range digits {
		nibble := checksum[(i/2)%len(checksum)]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0xf
		}

		if digit > '9' && nibble > 7 {
			digits[i] = digit - 'a' + 'A'
		}
	}

	return string(digits)
}
