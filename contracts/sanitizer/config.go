// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package sanitizer

// import paths are kept quoted, exactly as they appear in the ast
type SanitizerConfig struct {
	ImportWhitelist   map[string]bool
	FunctionBlacklist map[string][]string
	PackageName       string
}

func ConfigForNativeContracts() *SanitizerConfig {
	return &SanitizerConfig{
		ImportWhitelist: map[string]bool{
			`"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1"`:                     true,
			`"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/env"`:                 true,
			`"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/events"`:              true,
			`"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/safemath/safeuint32"`: true,
			`"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/safemath/safeuint64"`: true,
			`"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/state"`:               true,

			`"strconv"`: true,
		},
		FunctionBlacklist: map[string][]string{
			"strconv": {"AppendQuote", "AppendQuoteToASCII"},
		},
		PackageName: "main",
	}
}
