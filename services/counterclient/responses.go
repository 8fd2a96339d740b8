// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counterclient

import (
	"github.com/orbs-network/orbs-client-sdk-go/codec"
)

// callResult flattens the nested SDK responses, any of whose embedded parts may be missing
type callResult struct {
	requestStatus     codec.RequestStatus
	executionResult   codec.ExecutionResult
	transactionStatus codec.TransactionStatus
	outputArguments   []interface{}
	blockHeight       uint64
}

func transactionResultOf(response *codec.SendTransactionResponse) (*callResult, bool) {
	if response == nil || response.TransactionResponse == nil {
		return nil, false
	}

	result, ok := readResultOf(response.ReadResponse)
	if !ok {
		return nil, false
	}

	result.transactionStatus = response.TransactionStatus
	return result, true
}

func queryResultOf(response *codec.RunQueryResponse) (*callResult, bool) {
	if response == nil {
		return nil, false
	}
	return readResultOf(response.ReadResponse)
}

func readResultOf(response *codec.ReadResponse) (*callResult, bool) {
	if response == nil || response.Response == nil {
		return nil, false
	}

	return &callResult{
		requestStatus:   response.RequestStatus,
		executionResult: response.ExecutionResult,
		outputArguments: response.OutputArguments,
		blockHeight:     response.BlockHeight,
	}, true
}

func (r *callResult) succeeded(committed bool) bool {
	if r.requestStatus != codec.REQUEST_STATUS_COMPLETED || r.executionResult != codec.EXECUTION_RESULT_SUCCESS {
		return false
	}
	return !committed || r.transactionStatus == codec.TRANSACTION_STATUS_COMMITTED
}

func (r *callResult) executionError(method string) *ExecutionError {
	return &ExecutionError{
		Method:            method,
		RequestStatus:     r.requestStatus,
		ExecutionResult:   r.executionResult,
		TransactionStatus: r.transactionStatus,
		Output:            outputMessage(r.outputArguments),
	}
}
