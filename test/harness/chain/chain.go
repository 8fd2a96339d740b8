// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package chain is an in-process stand-in for an Orbs node, running the counter contract on the contract SDK's unit-test runtime
package chain

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/orbs-network/orbs-client-sdk-go/codec"
	"github.com/orbs-network/orbs-counter-go/contracts/counter"
	"github.com/orbs-network/orbs-counter-go/contracts/sanitizer"
	"github.com/orbs-network/orbs-counter-go/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-go/services/counterclient"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

type call struct {
	contractName string
	methodName   string
	args         []interface{}
	query        bool
}

type Chain struct {
	ctx    context.Context
	logger log.Logger

	deployableCode string

	mutex     sync.Mutex
	pending   map[string]*call
	contracts map[string]*contract

	blockHeight uint64
}

func NewChain(ctx context.Context, logger log.Logger) *Chain {
	code, err := sanitizer.NewSanitizer(sanitizer.ConfigForNativeContracts()).Process(counter.Source())
	if err != nil {
		panic(errors.Wrap(err, "counter contract source failed verification"))
	}

	return &Chain{
		ctx:            ctx,
		logger:         logger.WithTags(log.String("adapter", "in-process-chain")),
		deployableCode: code,
		pending:        make(map[string]*call),
		contracts:      make(map[string]*contract),
	}
}

var _ counterclient.OrbsClient = (*Chain)(nil)

func (c *Chain) CreateTransaction(publicKey []byte, privateKey []byte, contractName string, methodName string, inputArguments ...interface{}) ([]byte, string, error) {
	if len(publicKey) == 0 || len(privateKey) == 0 {
		return nil, "", errors.New("transaction must be signed")
	}

	txId := c.register(&call{contractName: contractName, methodName: methodName, args: inputArguments})
	return []byte(txId), txId, nil
}

func (c *Chain) CreateQuery(publicKey []byte, contractName string, methodName string, inputArguments ...interface{}) ([]byte, error) {
	queryId := c.register(&call{contractName: contractName, methodName: methodName, args: inputArguments, query: true})
	return []byte(queryId), nil
}

func (c *Chain) SendTransaction(rawTransaction []byte) (*codec.SendTransactionResponse, error) {
	txId := string(rawTransaction)
	pending, err := c.take(txId, false)
	if err != nil {
		return nil, err
	}

	out := c.execute(pending)
	height := atomic.AddUint64(&c.blockHeight, 1)

	c.logger.Info("transaction committed", logfields.Contract(pending.contractName), logfields.Method(pending.methodName), logfields.TxId(txId), log.String("execution-result", fmt.Sprint(out.result)))

	return &codec.SendTransactionResponse{
		TransactionResponse: &codec.TransactionResponse{
			ReadResponse:      out.readResponse(height),
			TransactionStatus: codec.TRANSACTION_STATUS_COMMITTED,
		},
	}, nil
}

func (c *Chain) SendQuery(rawQuery []byte) (*codec.RunQueryResponse, error) {
	pending, err := c.take(string(rawQuery), true)
	if err != nil {
		return nil, err
	}

	out := c.execute(pending)

	return &codec.RunQueryResponse{
		ReadResponse: out.readResponse(atomic.LoadUint64(&c.blockHeight)),
	}, nil
}

func (c *Chain) BlockHeight() uint64 {
	return atomic.LoadUint64(&c.blockHeight)
}

func (c *Chain) register(pending *call) string {
	id := uuid.New().String()

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.pending[id] = pending

	return id
}

func (c *Chain) take(id string, query bool) (*call, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	pending, found := c.pending[id]
	if !found || pending.query != query {
		return nil, errors.Errorf("unknown request %s", id)
	}
	delete(c.pending, id)

	return pending, nil
}

func (c *Chain) execute(pending *call) *outcome {
	if pending.contractName == counterclient.DEPLOYMENTS_CONTRACT {
		if pending.query || pending.methodName != counterclient.METHOD_DEPLOY {
			return failed(codec.EXECUTION_RESULT_ERROR_INPUT, errors.Errorf("method '%s' not found on contract '%s'", pending.methodName, pending.contractName))
		}
		return c.deploy(pending.args)
	}

	c.mutex.Lock()
	deployed, found := c.contracts[strings.ToLower(pending.contractName)]
	c.mutex.Unlock()

	if !found {
		return failed(codec.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED, errors.Errorf("contract '%s' is not deployed", pending.contractName))
	}

	return deployed.run(c.ctx, pending.methodName, pending.args)
}

func (c *Chain) deploy(args []interface{}) *outcome {
	if len(args) != 3 {
		return failed(codec.EXECUTION_RESULT_ERROR_INPUT, errors.Errorf("deployService takes 3 args but received %d", len(args)))
	}

	name, nameOk := args[0].(string)
	_, typeOk := args[1].(uint32)
	code, codeOk := args[2].([]byte)
	if !nameOk || !typeOk || !codeOk {
		return failed(codec.EXECUTION_RESULT_ERROR_INPUT, errors.New("deployService expects (string, uint32, bytes)"))
	}

	if string(code) != c.deployableCode {
		return failed(codec.EXECUTION_RESULT_ERROR_SMART_CONTRACT, errors.New("only the counter contract can be deployed on this chain"))
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	key := strings.ToLower(name)
	if _, exists := c.contracts[key]; exists {
		return failed(codec.EXECUTION_RESULT_ERROR_SMART_CONTRACT, errors.New("a contract with same name (case insensitive) already exists"))
	}

	deployed, err := startContract(c.ctx, name, c.logger)
	if err != nil {
		return failed(codec.EXECUTION_RESULT_ERROR_SMART_CONTRACT, err)
	}
	c.contracts[key] = deployed

	c.logger.Info("contract deployed", logfields.Contract(name))
	return &outcome{result: codec.EXECUTION_RESULT_SUCCESS}
}
