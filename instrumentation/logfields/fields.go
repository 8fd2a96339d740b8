// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"runtime/debug"
)

func BlockHeight(value primitives.BlockHeight) *log.Field {
	return &log.Field{Key: "block-height", Uint: uint64(value), Type: log.UintType}
}

func VirtualChainId(value uint32) *log.Field {
	return &log.Field{Key: "vcid", Uint: uint64(value), Type: log.UintType}
}

func Contract(name string) *log.Field {
	return log.String("contract", name)
}

func Method(name string) *log.Field {
	return log.String("method", name)
}

func Signer(address string) *log.Field {
	return log.String("signer", address)
}

func TxId(txId string) *log.Field {
	return log.String("tx-id", txId)
}

func CounterValue(value uint32) *log.Field {
	return log.Uint32("counter", value)
}

type Errorer interface {
	Error(message string, fields ...*log.Field)
}

type govnrErrorer struct {
	errorer Errorer
}

func (h *govnrErrorer) Error(err error) {
	h.errorer.Error("recovered panic", log.Error(err), log.String("stack-trace", string(debug.Stack())))
}

func GovnrErrorer(errorer Errorer) govnr.Errorer {
	return &govnrErrorer{errorer}
}
