// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"bytes"
	"github.com/orbs-network/orbs-counter-go/crypto/encoding"
	"golang.org/x/crypto/ed25519"
	"time"
)

type NodeConfig interface {
	CounterClientConfig
	HttpServerConfig
	LoggerConfig

	MetricsReportInterval() time.Duration
	ShutdownGracePeriod() time.Duration
}

type CounterClientConfig interface {
	Endpoint() string
	VirtualChainId() uint32
	ContractName() string
	SignerPrivateKey() ed25519.PrivateKey
	SignerPublicKey() ed25519.PublicKey
	// RequestTimeout bounds how long a caller waits for the node; the SDK's own HTTP call is not cancelled and finishes in the background
	RequestTimeout() time.Duration
	MaxWritesPerSecond() uint32
}

type HttpServerConfig interface {
	HttpAddress() string
	Profiling() bool
}

type LoggerConfig interface {
	LoggerFullLog() bool
	LoggerFileTruncationInterval() time.Duration
}

type mutableNodeConfig interface {
	NodeConfig
	Set(key string, value NodeConfigValue) mutableNodeConfig
	SetDuration(key string, value time.Duration) mutableNodeConfig
	SetUint32(key string, value uint32) mutableNodeConfig
	SetString(key string, value string) mutableNodeConfig
	SetBool(key string, value bool) mutableNodeConfig
	Modify(newValues ...NodeConfigKeyValue)
}

type NodeConfigValue struct {
	Uint32Value   uint32
	DurationValue time.Duration
	StringValue   string
	BoolValue     bool
}

type NodeConfigKeyValue struct {
	Key   string
	Value NodeConfigValue
}

type config struct {
	kv map[string]NodeConfigValue
}

const (
	// the three values every deployment has to provide
	JSON_RPC_URL_PUBLIC = "JSON_RPC_URL_PUBLIC"
	WALLET_SECRET_KEY   = "WALLET_SECRET_KEY"
	CONTRACT_ADDRESS    = "CONTRACT_ADDRESS"

	VIRTUAL_CHAIN_ID                     = "VIRTUAL_CHAIN_ID"
	REQUEST_TIMEOUT                      = "REQUEST_TIMEOUT"
	COUNTER_CLIENT_MAX_WRITES_PER_SECOND = "COUNTER_CLIENT_MAX_WRITES_PER_SECOND"

	HTTP_ADDRESS          = "HTTP_ADDRESS"
	PROFILING             = "PROFILING"
	SHUTDOWN_GRACE_PERIOD = "SHUTDOWN_GRACE_PERIOD"

	LOGGER_FULL_LOG                 = "LOGGER_FULL_LOG"
	LOGGER_FILE_TRUNCATION_INTERVAL = "LOGGER_FILE_TRUNCATION_INTERVAL"
	METRICS_REPORT_INTERVAL         = "METRICS_REPORT_INTERVAL"
)

func emptyConfig() mutableNodeConfig {
	return &config{
		kv: make(map[string]NodeConfigValue),
	}
}

func (c *config) Set(key string, value NodeConfigValue) mutableNodeConfig {
	c.kv[key] = value
	return c
}

func (c *config) SetDuration(key string, value time.Duration) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{DurationValue: value}
	return c
}

func (c *config) SetUint32(key string, value uint32) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{Uint32Value: value}
	return c
}

func (c *config) SetString(key string, value string) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{StringValue: value}
	return c
}

func (c *config) SetBool(key string, value bool) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{BoolValue: value}
	return c
}

func (c *config) Endpoint() string {
	return c.kv[JSON_RPC_URL_PUBLIC].StringValue
}

func (c *config) VirtualChainId() uint32 {
	return c.kv[VIRTUAL_CHAIN_ID].Uint32Value
}

func (c *config) ContractName() string {
	return c.kv[CONTRACT_ADDRESS].StringValue
}

// WALLET_SECRET_KEY holds either a 32 byte seed or a full 64 byte ed25519 private key, hex encoded with an optional 0x prefix
func (c *config) SignerPrivateKey() ed25519.PrivateKey {
	key, err := decodeSecretKey(c.kv[WALLET_SECRET_KEY].StringValue)
	if err != nil {
		return nil
	}
	return key
}

func (c *config) SignerPublicKey() ed25519.PublicKey {
	privateKey := c.SignerPrivateKey()
	if privateKey == nil {
		return nil
	}
	return privateKey.Public().(ed25519.PublicKey)
}

func (c *config) RequestTimeout() time.Duration {
	return c.kv[REQUEST_TIMEOUT].DurationValue
}

func (c *config) MaxWritesPerSecond() uint32 {
	return c.kv[COUNTER_CLIENT_MAX_WRITES_PER_SECOND].Uint32Value
}

func (c *config) HttpAddress() string {
	return c.kv[HTTP_ADDRESS].StringValue
}

func (c *config) Profiling() bool {
	return c.kv[PROFILING].BoolValue
}

func (c *config) ShutdownGracePeriod() time.Duration {
	return c.kv[SHUTDOWN_GRACE_PERIOD].DurationValue
}

func (c *config) LoggerFullLog() bool {
	return c.kv[LOGGER_FULL_LOG].BoolValue
}

func (c *config) LoggerFileTruncationInterval() time.Duration {
	return c.kv[LOGGER_FILE_TRUNCATION_INTERVAL].DurationValue
}

func (c *config) MetricsReportInterval() time.Duration {
	return c.kv[METRICS_REPORT_INTERVAL].DurationValue
}

func decodeSecretKey(value string) (ed25519.PrivateKey, error) {
	raw, err := encoding.DecodeHex(value)
	if err != nil {
		return nil, err
	}

	switch len(raw) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(raw), nil
	case ed25519.PrivateKeySize:
		privateKey := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
		if !bytes.Equal(privateKey, raw) {
			return nil, errMismatchedPublicKey()
		}
		return privateKey, nil
	}

	return nil, errInvalidKeyLength(len(raw))
}
