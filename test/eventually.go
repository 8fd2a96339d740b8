// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"time"
)

const (
	eventuallyIterations = 200
	eventuallyInterval   = 5 * time.Millisecond
)

// Eventually polls f for about a second
func Eventually(f func() bool) bool {
	for i := 0; i < eventuallyIterations; i++ {
		if f() {
			return true
		}
		time.Sleep(eventuallyInterval)
	}
	return false
}
