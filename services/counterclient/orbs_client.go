// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counterclient

import (
	"github.com/orbs-network/orbs-client-sdk-go/codec"
	orbsClient "github.com/orbs-network/orbs-client-sdk-go/orbs"
)

// OrbsClient is the part of the Orbs client SDK the counter client talks to
type OrbsClient interface {
	CreateTransaction(publicKey []byte, privateKey []byte, contractName string, methodName string, inputArguments ...interface{}) (rawTransaction []byte, txId string, err error)
	SendTransaction(rawTransaction []byte) (*codec.SendTransactionResponse, error)
	CreateQuery(publicKey []byte, contractName string, methodName string, inputArguments ...interface{}) (rawQuery []byte, err error)
	SendQuery(rawQuery []byte) (*codec.RunQueryResponse, error)
}

func NewOrbsClient(endpoint string, virtualChainId uint32) OrbsClient {
	return orbsClient.NewClient(endpoint, virtualChainId, codec.NETWORK_TYPE_TEST_NET)
}
