// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"time"
)

// all other configs are variations from the production one
func defaultProductionConfig() mutableNodeConfig {
	cfg := emptyConfig()

	cfg.SetUint32(VIRTUAL_CHAIN_ID, 42)

	// gamma and testnet nodes commit within a few seconds, the rest is network slack
	cfg.SetDuration(REQUEST_TIMEOUT, 30*time.Second)
	cfg.SetUint32(COUNTER_CLIENT_MAX_WRITES_PER_SECOND, 10)

	cfg.SetString(HTTP_ADDRESS, ":8080")
	cfg.SetBool(PROFILING, false)
	cfg.SetDuration(SHUTDOWN_GRACE_PERIOD, 5*time.Second)

	cfg.SetBool(LOGGER_FULL_LOG, true)
	cfg.SetDuration(LOGGER_FILE_TRUNCATION_INTERVAL, 24*time.Hour)
	cfg.SetDuration(METRICS_REPORT_INTERVAL, 30*time.Second)

	return cfg
}

func ForProduction() mutableNodeConfig {
	return defaultProductionConfig()
}

func ForCommandLine(configFiles []string, lookup LookupEnv) (NodeConfig, error) {
	cfg := defaultProductionConfig()

	// one-shot commands don't keep a log file around
	cfg.SetDuration(LOGGER_FILE_TRUNCATION_INTERVAL, 0)

	return buildConfig(cfg, configFiles, lookup)
}
