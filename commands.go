// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/orbs-counter-go/instrumentation"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-go/services/counterclient"
	"github.com/orbs-network/scribe/log"
	"github.com/spf13/cobra"
)

type commandLine struct {
	out           io.Writer
	lookupEnv     config.LookupEnv
	newOrbsClient func(endpoint string, virtualChainId uint32) counterclient.OrbsClient

	configFiles []string
	logPath     string
	silent      bool
	verbose     bool
}

func newCommandLine() *commandLine {
	return &commandLine{
		out:           os.Stdout,
		lookupEnv:     os.LookupEnv,
		newOrbsClient: counterclient.NewOrbsClient,
	}
}

func newRootCommand(cl *commandLine) *cobra.Command {
	root := &cobra.Command{
		Use:   "orbs-counter",
		Short: "Deploy, read and increment a counter contract on an Orbs virtual chain",
		Long: `orbs-counter talks to the counter contract named by CONTRACT_ADDRESS on the node at
JSON_RPC_URL_PUBLIC, signing with WALLET_SECRET_KEY. Values from --config files are applied first
and the environment overrides them.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringArrayVar(&cl.configFiles, "config", nil, "path/to/config.json, may be repeated")
	root.PersistentFlags().BoolVar(&cl.verbose, "verbose", false, "log every call, not only errors")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the counter page and its HTTP API until interrupted",
		Args:  cobra.NoArgs,
		RunE:  cl.serve,
	}
	serve.Flags().StringVar(&cl.logPath, "log", "", "path/to/node.log")
	serve.Flags().BoolVar(&cl.silent, "silent", false, "disable output to stdout")

	root.AddCommand(
		&cobra.Command{
			Use:   "read",
			Short: "Print the counter; exits 0 even when the node could not be reached",
			Args:  cobra.NoArgs,
			RunE:  cl.read,
		},
		&cobra.Command{
			Use:   "deploy",
			Short: "Deploy the counter contract under CONTRACT_ADDRESS",
			Args:  cobra.NoArgs,
			RunE:  cl.deploy,
		},
		&cobra.Command{
			Use:   "increment",
			Short: "Add one to the counter and print the new value",
			Args:  cobra.NoArgs,
			RunE:  cl.increment,
		},
		&cobra.Command{
			Use:   "increment-by N",
			Short: "Add N to the counter and print the new value",
			Args:  cobra.ExactArgs(1),
			RunE:  cl.incrementBy,
		},
		&cobra.Command{
			Use:   "address",
			Short: "Print the client address transactions are signed as",
			Args:  cobra.NoArgs,
			RunE:  cl.address,
		},
		serve,
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cl.out, config.GetVersion())
			},
		},
	)

	return root
}

func (cl *commandLine) loadConfig() (config.NodeConfig, error) {
	return config.ForCommandLine(cl.configFiles, cl.lookupEnv)
}

// one-shot commands only need the contract client and log to stderr
func (cl *commandLine) counterClient(logger log.Logger) (*counterclient.Client, config.NodeConfig, error) {
	cfg, err := cl.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	if err := config.ValidateCounterClient(cfg); err != nil {
		return nil, nil, err
	}

	orbs := cl.newOrbsClient(cfg.Endpoint(), cfg.VirtualChainId())
	return counterclient.NewClient(orbs, cfg, logger, metric.NewRegistry()), cfg, nil
}

func (cl *commandLine) commandLineLogger() log.Logger {
	return instrumentation.GetCommandLineLogger(cl.verbose)
}
