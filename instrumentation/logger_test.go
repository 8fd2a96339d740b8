// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package instrumentation

import (
	"bytes"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

type loggerConfig struct {
	fullLog bool
}

func (c *loggerConfig) LoggerFullLog() bool {
	return c.fullLog
}

func (c *loggerConfig) LoggerFileTruncationInterval() time.Duration {
	return 0
}

func TestGetLogger_FullLogWritesInfo(t *testing.T) {
	var out bytes.Buffer
	logger := getLogger(&out, "", false, &loggerConfig{fullLog: true})

	logger.Info("counter read", log.Uint32("counter", 6))

	require.Contains(t, out.String(), "counter read")
}

func TestGetLogger_ErrorsOnlyFiltersInfo(t *testing.T) {
	var out bytes.Buffer
	logger := getLogger(&out, "", false, &loggerConfig{fullLog: false})

	logger.Info("counter read")
	logger.Error("counter read failed", log.Error(errors.New("connection refused")))

	require.NotContains(t, out.String(), "counter read\"")
	require.Contains(t, out.String(), "counter read failed")
}

func TestGetLogger_Silent(t *testing.T) {
	var out bytes.Buffer
	logger := getLogger(&out, "", true, &loggerConfig{fullLog: true})

	logger.Error("nobody hears this")

	require.Empty(t, out.String())
}
