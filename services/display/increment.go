// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package display

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidIncrement = errors.New("increment must be a whole number between 0 and 4294967295")

type Increment uint32

// ParseIncrement accepts the decimal text of a non-negative integer that fits in a uint32
func ParseIncrement(text string) (Increment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, errors.Wrap(ErrInvalidIncrement, "increment is empty")
	}

	value, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidIncrement, "cannot use %q", text)
	}

	return Increment(value), nil
}

func IsInvalidInput(err error) bool {
	return errors.Cause(err) == ErrInvalidIncrement
}
