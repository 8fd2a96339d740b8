// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"fmt"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"time"
)

// Mutate
func (c *config) Modify(newValues ...NodeConfigKeyValue) {
	for _, kv := range newValues {
		c.kv[kv.Key] = kv.Value
	}
}

func modifyFromJson(cfg mutableNodeConfig, source string) error {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(source), &data); err != nil {
		return err
	}

	if err := populateConfig(cfg, data); err != nil {
		return err
	}

	return nil
}

func convertKeyName(key string) string {
	return strings.ToUpper(strings.Replace(key, "-", "_", -1))
}

func populateConfig(cfg mutableNodeConfig, data map[string]interface{}) error {
	for key, value := range data {
		switch value := value.(type) {
		case bool:
			cfg.SetBool(convertKeyName(key), value)
		case float64:
			if value < 0 || value != float64(uint32(value)) {
				return fmt.Errorf("could not decode value for config key %s: %v is not a uint32", key, value)
			}
			cfg.SetUint32(convertKeyName(key), uint32(value))
		case string:
			if duration, decodeError := time.ParseDuration(value); decodeError != nil {
				cfg.SetString(convertKeyName(key), value)
			} else {
				cfg.SetDuration(convertKeyName(key), duration)
			}
		default:
			return fmt.Errorf("could not decode value for config key %s: unsupported type %T", key, value)
		}
	}

	return nil
}

type valueKind int

const (
	stringValue valueKind = iota
	uint32Value
	durationValue
	boolValue
)

// keys that may be overridden from the process environment
var environmentKeys = map[string]valueKind{
	JSON_RPC_URL_PUBLIC:                  stringValue,
	WALLET_SECRET_KEY:                    stringValue,
	CONTRACT_ADDRESS:                     stringValue,
	VIRTUAL_CHAIN_ID:                     uint32Value,
	REQUEST_TIMEOUT:                      durationValue,
	COUNTER_CLIENT_MAX_WRITES_PER_SECOND: uint32Value,
	HTTP_ADDRESS:                         stringValue,
	PROFILING:                            boolValue,
	SHUTDOWN_GRACE_PERIOD:                durationValue,
	LOGGER_FULL_LOG:                      boolValue,
	METRICS_REPORT_INTERVAL:              durationValue,
}

type LookupEnv func(key string) (string, bool)

func modifyFromEnvironment(cfg mutableNodeConfig, lookup LookupEnv) error {
	for key, kind := range environmentKeys {
		value, found := lookup(key)
		if !found || value == "" {
			continue
		}

		switch kind {
		case stringValue:
			cfg.SetString(key, value)
		case uint32Value:
			i, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return errors.Wrapf(err, "could not decode environment variable %s", key)
			}
			cfg.SetUint32(key, uint32(i))
		case durationValue:
			d, err := time.ParseDuration(value)
			if err != nil {
				return errors.Wrapf(err, "could not decode environment variable %s", key)
			}
			cfg.SetDuration(key, d)
		case boolValue:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return errors.Wrapf(err, "could not decode environment variable %s", key)
			}
			cfg.SetBool(key, b)
		}
	}

	return nil
}

// GetNodeConfig layers the production preset, the config files in order and finally the environment
func GetNodeConfig(configFiles []string, lookup LookupEnv) (NodeConfig, error) {
	return buildConfig(ForProduction(), configFiles, lookup)
}

func buildConfig(cfg mutableNodeConfig, configFiles []string, lookup LookupEnv) (NodeConfig, error) {
	for _, configFile := range configFiles {
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			return nil, errors.Errorf("could not open config file: %s", err)
		}

		contents, err := ioutil.ReadFile(configFile)
		if err != nil {
			return nil, err
		}

		if err := modifyFromJson(cfg, string(contents)); err != nil {
			return nil, errors.Wrapf(err, "failed parsing config file %s", configFile)
		}
	}

	if lookup != nil {
		if err := modifyFromEnvironment(cfg, lookup); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
