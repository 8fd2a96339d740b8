// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"testing"
)

func TestRequireCmpEqual_AcceptsEqualValues(t *testing.T) {
	type counterState struct {
		Value    string
		Versions []uint32
	}

	RequireCmpEqual(t, "6", "6")
	RequireCmpEqual(t, counterState{Value: "6", Versions: []uint32{1, 6}}, counterState{Value: "6", Versions: []uint32{1, 6}})
}
