// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"fmt"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"testing"
)

// RequireCmpEqual stops the test with a go-cmp diff when expected and actual differ
func RequireCmpEqual(t testing.TB, expected interface{}, actual interface{}, msgAndArgs ...interface{}) {
	if diff := cmp.Diff(expected, actual); diff != "" {
		require.Fail(t, fmt.Sprintf("Not equal: \n"+
			"expected: %v\n"+
			"actual  : %v\n%s", expected, actual, diff), msgAndArgs...)
	}
}
