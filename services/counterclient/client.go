// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counterclient

import (
	"context"
	"time"

	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-client-sdk-go/codec"
	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/orbs-counter-go/contracts/counter"
	"github.com/orbs-network/orbs-counter-go/contracts/sanitizer"
	"github.com/orbs-network/orbs-counter-go/crypto/digest"
	"github.com/orbs-network/orbs-counter-go/crypto/encoding"
	"github.com/orbs-network/orbs-counter-go/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-go/instrumentation/trace"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	DEPLOYMENTS_CONTRACT = "_Deployments"
	METHOD_DEPLOY        = "deployService"
)

const defaultMaxLatency = 30 * time.Second

type Client struct {
	orbs          OrbsClient
	config        config.CounterClientConfig
	signerAddress string
	logger        log.Logger
	limiter       *rate.Limiter
	metrics       *metrics
}

type metrics struct {
	readTime        *metric.Histogram
	writeTime       *metric.Histogram
	failedReads     *metric.Gauge
	failedWrites    *metric.Gauge
	writesPerSecond *metric.Rate
	lastValue       *metric.Gauge
}

func newMetrics(factory metric.Factory, timeout time.Duration) *metrics {
	if timeout <= 0 {
		timeout = defaultMaxLatency
	}

	return &metrics{
		readTime:        factory.NewLatency("CounterClient.ReadTime.Millis", timeout),
		writeTime:       factory.NewLatency("CounterClient.WriteTime.Millis", timeout),
		failedReads:     factory.NewGauge("CounterClient.FailedReads.Count"),
		failedWrites:    factory.NewGauge("CounterClient.FailedWrites.Count"),
		writesPerSecond: factory.NewRate("CounterClient.Writes.PerSecond"),
		lastValue:       factory.NewGauge("CounterClient.LastValue"),
	}
}

func NewClient(orbs OrbsClient, cfg config.CounterClientConfig, parentLogger log.Logger, metricFactory metric.Factory) *Client {
	limit := rate.Inf
	if cfg.MaxWritesPerSecond() > 0 {
		limit = rate.Limit(cfg.MaxWritesPerSecond())
	}

	signerAddress := ""
	if address, err := digest.CalcClientAddressOfEd25519PublicKey(cfg.SignerPublicKey()); err == nil {
		signerAddress = encoding.EncodeHex(address)
	}

	return &Client{
		orbs:          orbs,
		config:        cfg,
		signerAddress: signerAddress,
		logger:        parentLogger.WithTags(log.String("service", "counter-client"), logfields.Contract(cfg.ContractName()), logfields.Signer(signerAddress)),
		limiter:       rate.NewLimiter(limit, 1),
		metrics:       newMetrics(metricFactory, cfg.RequestTimeout()),
	}
}

// SignerAddress is the hex client address the node attributes this client's transactions to, empty without a valid key
func (c *Client) SignerAddress() string {
	return c.signerAddress
}

// Read queries the counter; queries are not committed and do not consume the write budget
func (c *Client) Read(ctx context.Context) (uint32, error) {
	start := time.Now()
	defer c.metrics.readTime.RecordSince(start)

	value, err := c.query(ctx, counter.METHOD_READ_COUNTER)
	if err != nil {
		c.metrics.failedReads.Inc()
		return 0, err
	}

	c.metrics.lastValue.UpdateUint32(value)
	return value, nil
}

func (c *Client) IncrementByOne(ctx context.Context) (uint32, error) {
	return c.write(ctx, counter.METHOD_INCREMENT_BY_ONE)
}

func (c *Client) IncrementByN(ctx context.Context, n uint32) (uint32, error) {
	return c.write(ctx, counter.METHOD_INCREMENT_BY_N, n)
}

// Deploy publishes the counter contract under the configured contract name, the node constructs it on deployment
func (c *Client) Deploy(ctx context.Context) error {
	code, err := sanitizer.NewSanitizer(sanitizer.ConfigForNativeContracts()).Process(counter.Source())
	if err != nil {
		return errors.Wrap(err, "counter contract source failed verification")
	}

	logger := c.logger.WithTags(trace.LogFieldFrom(ctx))
	logger.Info("deploying contract")

	_, err = c.sendTransaction(ctx, DEPLOYMENTS_CONTRACT, METHOD_DEPLOY, c.config.ContractName(), uint32(protocol.PROCESSOR_TYPE_NATIVE), []byte(code))
	if err != nil {
		logger.Error("contract deployment failed", log.Error(err))
		return err
	}

	logger.Info("contract deployed")
	return nil
}

func (c *Client) write(ctx context.Context, method string, args ...interface{}) (uint32, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		c.metrics.failedWrites.Inc()
		return 0, errors.Wrapf(err, "%s was not sent", method)
	}

	start := time.Now()
	defer c.metrics.writeTime.RecordSince(start)
	c.metrics.writesPerSecond.Measure(1)

	result, err := c.sendTransaction(ctx, c.config.ContractName(), method, args...)
	if err != nil {
		c.metrics.failedWrites.Inc()
		return 0, err
	}

	value, err := decodeCounter(method, result.outputArguments)
	if err != nil {
		c.metrics.failedWrites.Inc()
		return 0, err
	}

	c.metrics.lastValue.UpdateUint32(value)
	c.logger.Info("counter updated", trace.LogFieldFrom(ctx), logfields.Method(method), logfields.CounterValue(value), log.Uint64("block-height", result.blockHeight))
	return value, nil
}

func (c *Client) sendTransaction(ctx context.Context, contractName string, method string, args ...interface{}) (*callResult, error) {
	tx, txId, err := c.orbs.CreateTransaction(c.config.SignerPublicKey(), c.config.SignerPrivateKey(), contractName, method, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed creating transaction for %s", method)
	}

	out, err := c.withTimeout(ctx, method, func() (interface{}, error) {
		return c.orbs.SendTransaction(tx)
	})

	// the node answers failed executions with a non-200 status and a decodable body
	response, _ := out.(*codec.SendTransactionResponse)
	result, decoded := transactionResultOf(response)
	if decoded && !result.succeeded(true) {
		return nil, result.executionError(method)
	}

	if err != nil {
		c.logger.Info("transaction was not sent", trace.LogFieldFrom(ctx), logfields.Method(method), logfields.TxId(txId), log.Error(err))
		return nil, errors.Wrapf(err, "failed sending transaction %s", txId)
	}

	if !decoded {
		return nil, errors.Errorf("transaction %s returned no response", txId)
	}

	return result, nil
}

func (c *Client) query(ctx context.Context, method string, args ...interface{}) (uint32, error) {
	q, err := c.orbs.CreateQuery(c.config.SignerPublicKey(), c.config.ContractName(), method, args...)
	if err != nil {
		return 0, errors.Wrapf(err, "failed creating query for %s", method)
	}

	out, err := c.withTimeout(ctx, method, func() (interface{}, error) {
		return c.orbs.SendQuery(q)
	})

	response, _ := out.(*codec.RunQueryResponse)
	result, decoded := queryResultOf(response)
	if decoded && !result.succeeded(false) {
		return 0, result.executionError(method)
	}

	if err != nil {
		c.logger.Info("query was not sent", trace.LogFieldFrom(ctx), logfields.Method(method), log.Error(err))
		return 0, errors.Wrapf(err, "failed sending query %s", method)
	}

	if !decoded {
		return 0, errors.Errorf("query %s returned no response", method)
	}

	return decodeCounter(method, result.outputArguments)
}

type outcome struct {
	value interface{}
	err   error
}

// the SDK calls block on HTTP without a context, so the request timeout is enforced around them.
// A call that times out keeps its goroutine until the node answers or the connection drops
func (c *Client) withTimeout(ctx context.Context, method string, call func() (interface{}, error)) (interface{}, error) {
	if timeout := c.config.RequestTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	done := make(chan outcome, 1)
	govnr.Once(logfields.GovnrErrorer(c.logger), func() {
		result := outcome{err: errors.Errorf("%s did not complete", method)}
		defer func() { done <- result }()
		value, err := call()
		result = outcome{value: value, err: err}
	})

	select {
	case result := <-done:
		return result.value, result.err
	case <-ctx.Done():
		return nil, errors.Wrapf(ctx.Err(), "%s timed out", method)
	}
}

func decodeCounter(method string, outputArguments []interface{}) (uint32, error) {
	if len(outputArguments) != 1 {
		return 0, errors.Errorf("%s returned %d output arguments, expected 1", method, len(outputArguments))
	}

	value, ok := outputArguments[0].(uint32)
	if !ok {
		return 0, errors.Errorf("%s returned %T, expected uint32", method, outputArguments[0])
	}

	return value, nil
}
