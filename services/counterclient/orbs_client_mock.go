// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counterclient

import (
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/orbs-client-sdk-go/codec"
)

// MockOrbsClient records the contract and method of every call; input arguments are passed as a single slice
type MockOrbsClient struct {
	mock.Mock
}

func (m *MockOrbsClient) CreateTransaction(publicKey []byte, privateKey []byte, contractName string, methodName string, inputArguments ...interface{}) ([]byte, string, error) {
	ret := m.Called(contractName, methodName, inputArguments)
	if out := ret.Get(0); out != nil {
		return out.([]byte), ret.Get(1).(string), ret.Error(2)
	} else {
		return nil, "", ret.Error(2)
	}
}

func (m *MockOrbsClient) SendTransaction(rawTransaction []byte) (*codec.SendTransactionResponse, error) {
	ret := m.Called(rawTransaction)
	if out := ret.Get(0); out != nil {
		return out.(*codec.SendTransactionResponse), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

func (m *MockOrbsClient) CreateQuery(publicKey []byte, contractName string, methodName string, inputArguments ...interface{}) ([]byte, error) {
	ret := m.Called(contractName, methodName, inputArguments)
	if out := ret.Get(0); out != nil {
		return out.([]byte), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

func (m *MockOrbsClient) SendQuery(rawQuery []byte) (*codec.RunQueryResponse, error) {
	ret := m.Called(rawQuery)
	if out := ret.Get(0); out != nil {
		return out.(*codec.RunQueryResponse), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}
