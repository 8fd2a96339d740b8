// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counter

import (
	"math"
	"testing"

	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/state"
	. "github.com/orbs-network/orbs-contract-sdk/go/testing/unit"
	"github.com/stretchr/testify/require"
)

func construct(m Mockery) {
	m.MockEmitEvent(CounterConstructed, CONSTRUCTED_MESSAGE)
	_init()
}

func TestCounter_ReadAfterConstructIsZero(t *testing.T) {
	InServiceScope(nil, nil, func(m Mockery) {
		construct(m)

		require.EqualValues(t, 0, readCounter())
		require.Equal(t, "0", state.ReadString(COUNTER_KEY), "value should be stored as a decimal string")
	})
}

func TestCounter_ReadBeforeConstructIsZero(t *testing.T) {
	InServiceScope(nil, nil, func(m Mockery) {
		require.EqualValues(t, 0, readCounter())
	})
}

func TestCounter_SecondConstructDoesNotChangeValue(t *testing.T) {
	InServiceScope(nil, nil, func(m Mockery) {
		construct(m)
		incrementByN(5)

		_init()

		require.EqualValues(t, 5, readCounter(), "second construct must be a no-op")
	})
}

func TestCounter_IncrementByOneReturnsNewValue(t *testing.T) {
	InServiceScope(nil, nil, func(m Mockery) {
		construct(m)

		for k := uint32(1); k <= 10; k++ {
			require.EqualValues(t, k, incrementByOne())
		}
		require.EqualValues(t, 10, readCounter())
	})
}

func TestCounter_IncrementByNReturnsNewValue(t *testing.T) {
	InServiceScope(nil, nil, func(m Mockery) {
		construct(m)

		require.EqualValues(t, 7, incrementByN(7))
		require.EqualValues(t, 7, readCounter())
	})
}

func TestCounter_IncrementByZeroIsNoop(t *testing.T) {
	InServiceScope(nil, nil, func(m Mockery) {
		construct(m)
		incrementByN(3)

		require.EqualValues(t, 3, incrementByN(0))
		require.EqualValues(t, 3, readCounter())
	})
}

func TestCounter_IncrementsAreAssociative(t *testing.T) {
	tests := []struct {
		name string
		a, b uint32
	}{
		{"both zero", 0, 0},
		{"zero then some", 0, 9},
		{"small", 2, 3},
		{"large", 1 << 30, 1 << 30},
		{"up to max", math.MaxUint32 - 10, 10},
	}
	for i := range tests {
		cTest := tests[i]
		t.Run(cTest.name, func(t *testing.T) {
			var stepwise, combined uint32

			InServiceScope(nil, nil, func(m Mockery) {
				construct(m)
				incrementByN(cTest.a)
				stepwise = incrementByN(cTest.b)
			})

			InServiceScope(nil, nil, func(m Mockery) {
				construct(m)
				combined = incrementByN(cTest.a + cTest.b)
			})

			require.Equal(t, combined, stepwise)
		})
	}
}

func TestCounter_OverflowFailsWithoutWriting(t *testing.T) {
	InServiceScope(nil, nil, func(m Mockery) {
		construct(m)
		incrementByN(math.MaxUint32 - 1)

		require.Panics(t, func() {
			incrementByN(2)
		}, "should panic on uint32 overflow")
		require.EqualValues(t, math.MaxUint32-1, readCounter(), "value must not change after a failed increment")

		require.EqualValues(t, uint32(math.MaxUint32), incrementByOne())
		require.Panics(t, func() {
			incrementByOne()
		}, "should panic on uint32 overflow")
		require.EqualValues(t, uint32(math.MaxUint32), readCounter())
	})
}

func TestCounter_CorruptStatePanics(t *testing.T) {
	InServiceScope(nil, nil, func(m Mockery) {
		state.WriteString(COUNTER_KEY, "six")

		require.Panics(t, func() {
			readCounter()
		})
		require.Panics(t, func() {
			incrementByOne()
		})
		require.Equal(t, "six", state.ReadString(COUNTER_KEY))
	})
}

func TestCounter_DeployReadIncrementScenario(t *testing.T) {
	InServiceScope(nil, nil, func(m Mockery) {
		construct(m)

		require.EqualValues(t, 0, readCounter())
		require.EqualValues(t, 1, incrementByOne())
		require.EqualValues(t, 6, incrementByN(5))
		require.EqualValues(t, 6, readCounter())
	})
}

func TestSource_IsTheContractPackage(t *testing.T) {
	require.Contains(t, Source(), "package counter")
	require.Contains(t, Source(), "var PUBLIC = sdk.Export(incrementByOne, incrementByN, readCounter)")
}
