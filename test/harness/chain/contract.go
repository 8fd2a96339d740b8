// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package chain

import (
	"context"
	"reflect"
	"runtime"
	"strings"

	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-client-sdk-go/codec"
	"github.com/orbs-network/orbs-counter-go/contracts/counter"
	"github.com/orbs-network/orbs-counter-go/instrumentation/logfields"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"

	"github.com/orbs-network/orbs-contract-sdk/go/testing/unit"
)

type outcome struct {
	result    codec.ExecutionResult
	arguments []interface{}
}

func failed(result codec.ExecutionResult, err error) *outcome {
	return &outcome{result: result, arguments: []interface{}{err.Error()}}
}

func (o *outcome) readResponse(blockHeight uint64) *codec.ReadResponse {
	return &codec.ReadResponse{
		Response: &codec.Response{
			RequestStatus: codec.REQUEST_STATUS_COMPLETED,
			BlockHeight:   blockHeight,
		},
		ExecutionResult: o.result,
		OutputArguments: o.arguments,
	}
}

// contract state lives inside one SDK service scope, so every call runs on the goroutine that owns it
type contract struct {
	name          string
	publicMethods map[string]interface{}
	systemMethods map[string]interface{}
	calls         chan func(m unit.Mockery)
	stopped       chan struct{}
}

func extractMethodName(fullPackageName string) string {
	parts := strings.Split(fullPackageName, ".")
	return parts[len(parts)-1]
}

func methodsByName(methods []interface{}) (map[string]interface{}, error) {
	res := make(map[string]interface{})
	for _, method := range methods {
		v := reflect.ValueOf(method)
		if v.Kind() != reflect.Func {
			return nil, errors.New("exported method is not a valid func")
		}
		res[extractMethodName(runtime.FuncForPC(v.Pointer()).Name())] = method
	}
	return res, nil
}

func startContract(ctx context.Context, name string, logger log.Logger) (*contract, error) {
	publicMethods, err := methodsByName(counter.PUBLIC)
	if err != nil {
		return nil, err
	}
	systemMethods, err := methodsByName(counter.SYSTEM)
	if err != nil {
		return nil, err
	}

	c := &contract{
		name:          name,
		publicMethods: publicMethods,
		systemMethods: systemMethods,
		calls:         make(chan func(m unit.Mockery)),
		stopped:       make(chan struct{}),
	}

	govnr.Once(logfields.GovnrErrorer(logger), func() {
		defer close(c.stopped)
		unit.InServiceScope(nil, nil, func(m unit.Mockery) {
			for {
				select {
				case f := <-c.calls:
					f(m)
				case <-ctx.Done():
					return
				}
			}
		})
	})

	constructed := c.inScope(ctx, func(m unit.Mockery) *outcome {
		m.MockEmitEvent(counter.CounterConstructed, counter.CONSTRUCTED_MESSAGE)
		return c.call(systemMethods[counter.METHOD_INIT], counter.METHOD_INIT, nil)
	})
	if constructed.result != codec.EXECUTION_RESULT_SUCCESS {
		return nil, errors.Errorf("constructor of %s failed: %v", name, constructed.arguments)
	}

	return c, nil
}

func (c *contract) run(ctx context.Context, methodName string, args []interface{}) *outcome {
	if _, system := c.systemMethods[methodName]; system {
		return failed(codec.EXECUTION_RESULT_ERROR_INPUT, errors.Errorf("only system contracts can run method '%s'", methodName))
	}

	method, found := c.publicMethods[methodName]
	if !found {
		return failed(codec.EXECUTION_RESULT_ERROR_INPUT, errors.Errorf("method '%s' not found on contract '%s'", methodName, c.name))
	}

	return c.inScope(ctx, func(m unit.Mockery) *outcome {
		return c.call(method, methodName, args)
	})
}

func (c *contract) inScope(ctx context.Context, f func(m unit.Mockery) *outcome) *outcome {
	done := make(chan *outcome, 1)

	select {
	case c.calls <- func(m unit.Mockery) { done <- f(m) }:
	case <-c.stopped:
		return failed(codec.EXECUTION_RESULT_ERROR_UNEXPECTED, errors.New("chain is shut down"))
	}

	select {
	case out := <-done:
		return out
	case <-ctx.Done():
		return failed(codec.EXECUTION_RESULT_ERROR_UNEXPECTED, ctx.Err())
	}
}

// a panic in the contract is its execution error, the state it did not write stays untouched
func (c *contract) call(method interface{}, methodName string, args []interface{}) (out *outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = failed(codec.EXECUTION_RESULT_ERROR_SMART_CONTRACT, errors.Errorf("%s", r))
		}
	}()

	inValues, err := prepareMethodInputArgs(method, methodName, args)
	if err != nil {
		return failed(codec.EXECUTION_RESULT_ERROR_INPUT, err)
	}

	outValues := reflect.ValueOf(method).Call(inValues)

	arguments := make([]interface{}, 0, len(outValues))
	for _, value := range outValues {
		arguments = append(arguments, value.Interface())
	}

	return &outcome{result: codec.EXECUTION_RESULT_SUCCESS, arguments: arguments}
}

func prepareMethodInputArgs(method interface{}, methodName string, args []interface{}) ([]reflect.Value, error) {
	methodType := reflect.TypeOf(method)
	if methodType.NumIn() != len(args) {
		return nil, errors.Errorf("method '%s' takes %d args but received %d", methodName, methodType.NumIn(), len(args))
	}

	res := make([]reflect.Value, 0, len(args))
	for i, arg := range args {
		expected := methodType.In(i)
		value := reflect.ValueOf(arg)
		if !value.IsValid() || value.Type() != expected {
			return nil, errors.Errorf("method '%s' expects arg %d to be %s but it has %T", methodName, i, expected, arg)
		}
		res = append(res, value)
	}

	return res, nil
}
