// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package display

import (
	"context"

	"github.com/orbs-network/go-mock"
)

type MockCounterClient struct {
	mock.Mock
}

func (m *MockCounterClient) Read(ctx context.Context) (uint32, error) {
	ret := m.Called(ctx)
	return ret.Get(0).(uint32), ret.Error(1)
}

func (m *MockCounterClient) IncrementByOne(ctx context.Context) (uint32, error) {
	ret := m.Called(ctx)
	return ret.Get(0).(uint32), ret.Error(1)
}

func (m *MockCounterClient) IncrementByN(ctx context.Context, n uint32) (uint32, error) {
	ret := m.Called(ctx, n)
	return ret.Get(0).(uint32), ret.Error(1)
}
