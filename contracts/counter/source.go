// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counter

import (
	_ "embed"
)

const (
	METHOD_INIT             = "_init"
	METHOD_INCREMENT_BY_ONE = "incrementByOne"
	METHOD_INCREMENT_BY_N   = "incrementByN"
	METHOD_READ_COUNTER     = "readCounter"
)

//go:embed counter.go
var source string

// Source returns the contract as a library package; it has to pass through the
// sanitizer before it can be deployed as a native contract.
func Source() string {
	return source
}
