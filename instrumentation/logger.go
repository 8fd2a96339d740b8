// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package instrumentation

import (
	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/scribe/log"
	"io"
	"os"
)

// used until the configuration is read; writes to stderr so stdout stays clean for command output
func GetBootstrapCrashLogger() log.Logger {
	return log.GetLogger().WithOutput(log.NewFormattingOutput(os.Stderr, log.NewHumanReadableFormatter()))
}

func GetLogger(path string, silent bool, cfg config.LoggerConfig) log.Logger {
	return getLogger(os.Stdout, path, silent, cfg)
}

func getLogger(stdout io.Writer, path string, silent bool, cfg config.LoggerConfig) log.Logger {
	outputs := make([]log.Output, 0, 2)

	if !silent {
		outputs = append(outputs, log.NewFormattingOutput(stdout, log.NewJsonFormatter()))
	}

	if path != "" {
		logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			panic(err)
		}

		var fileWriter io.Writer = logFile
		if interval := cfg.LoggerFileTruncationInterval(); interval > 0 {
			fileWriter = log.NewTruncatingFileWriter(logFile, interval)
		}
		outputs = append(outputs, log.NewFormattingOutput(fileWriter, log.NewJsonFormatter()))
	}

	logger := log.GetLogger().WithOutput(outputs...)

	conditionalFilter := log.NewConditionalFilter(false, nil)

	if !cfg.LoggerFullLog() {
		conditionalFilter = log.NewConditionalFilter(true, log.OnlyErrors())
	}

	return logger.WithFilters(conditionalFilter)
}

// command line output goes to stderr in human readable form, errors only unless verbose
func GetCommandLineLogger(verbose bool) log.Logger {
	logger := log.GetLogger().WithOutput(log.NewFormattingOutput(os.Stderr, log.NewHumanReadableFormatter()))
	if verbose {
		return logger
	}
	return logger.WithFilters(log.NewConditionalFilter(true, log.OnlyErrors()))
}
