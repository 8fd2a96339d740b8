// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counterclient

import (
	"fmt"
	"github.com/orbs-network/orbs-client-sdk-go/codec"
)

// ExecutionError is returned when the node answered but the call did not succeed
type ExecutionError struct {
	Method            string
	RequestStatus     codec.RequestStatus
	ExecutionResult   codec.ExecutionResult
	TransactionStatus codec.TransactionStatus
	Output            string
}

func (e *ExecutionError) Error() string {
	message := fmt.Sprintf("%s failed: request status %s, execution result %s", e.Method, e.RequestStatus, e.ExecutionResult)
	var unset codec.TransactionStatus
	if e.TransactionStatus != unset {
		message += fmt.Sprintf(", transaction status %s", e.TransactionStatus)
	}
	if e.Output != "" {
		message += ": " + e.Output
	}
	return message
}

func outputMessage(outputArguments []interface{}) string {
	if len(outputArguments) == 0 {
		return ""
	}
	if message, ok := outputArguments[0].(string); ok {
		return message
	}
	return ""
}
