// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counter

import (
	"strconv"

	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/events"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/safemath/safeuint32"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/state"
)

var PUBLIC = sdk.Export(incrementByOne, incrementByN, readCounter)
var SYSTEM = sdk.Export(_init)
var EVENTS = sdk.Export(CounterConstructed)

const CONSTRUCTED_MESSAGE = "Constructor Counter Smart Contract"

// value is kept as a decimal string
var COUNTER_KEY = []byte("counter")

func CounterConstructed(message string) {}

func _init() {
	if _isConstructed() {
		return
	}

	_writeCounter(0)
	events.EmitEvent(CounterConstructed, CONSTRUCTED_MESSAGE)
}

func incrementByOne() uint32 {
	return incrementByN(1)
}

// panics on uint32 overflow before anything is written
func incrementByN(n uint32) uint32 {
	value := safeuint32.Add(readCounter(), n)
	_writeCounter(value)
	return value
}

func readCounter() uint32 {
	stored := state.ReadString(COUNTER_KEY)
	if stored == "" {
		return 0
	}

	value, err := strconv.ParseUint(stored, 10, 32)
	if err != nil {
		panic("counter state is not a uint32 decimal: " + strconv.Quote(stored))
	}

	return uint32(value)
}

func _isConstructed() bool {
	return state.ReadString(COUNTER_KEY) != ""
}

func _writeCounter(value uint32) {
	state.WriteString(COUNTER_KEY, strconv.FormatUint(uint64(value), 10))
}
