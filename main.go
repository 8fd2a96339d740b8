// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"os"

	"github.com/orbs-network/orbs-counter-go/instrumentation"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

func main() {
	logger := instrumentation.GetBootstrapCrashLogger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("unexpected error in main goroutine", log.Error(errors.Errorf("unknown error: %v", r)))
			os.Exit(2)
		}
	}()

	if err := newRootCommand(newCommandLine()).Execute(); err != nil {
		os.Exit(1)
	}
}
