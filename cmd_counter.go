// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"context"
	"fmt"

	"github.com/orbs-network/orbs-counter-go/instrumentation/trace"
	"github.com/orbs-network/orbs-counter-go/services/display"
	"github.com/orbs-network/scribe/log"
	"github.com/spf13/cobra"
)

// read reports failures on stderr and an empty line on stdout, the exit status is always success
func (cl *commandLine) read(cmd *cobra.Command, args []string) error {
	logger := cl.commandLineLogger()
	client, cfg, err := cl.counterClient(logger)
	if err != nil {
		logger.Error("error reading configuration", log.Error(err))
		return err
	}

	ctx, cancel := context.WithTimeout(trace.NewContext(context.Background(), "read"), cfg.RequestTimeout())
	defer cancel()

	value, err := client.Read(ctx)
	if err != nil {
		logger.Error("failed reading counter", log.Error(err))
		fmt.Fprintln(cl.out)
		return nil
	}

	fmt.Fprintln(cl.out, value)
	return nil
}

func (cl *commandLine) deploy(cmd *cobra.Command, args []string) error {
	logger := cl.commandLineLogger()
	client, cfg, err := cl.counterClient(logger)
	if err != nil {
		logger.Error("error reading configuration", log.Error(err))
		return err
	}

	ctx, cancel := context.WithTimeout(trace.NewContext(context.Background(), "deploy"), cfg.RequestTimeout())
	defer cancel()

	if err := client.Deploy(ctx); err != nil {
		return err
	}

	value, err := client.Read(ctx)
	if err != nil {
		logger.Error("contract deployed but could not be read", log.Error(err))
		return err
	}

	fmt.Fprintln(cl.out, value)
	return nil
}

func (cl *commandLine) increment(cmd *cobra.Command, args []string) error {
	logger := cl.commandLineLogger()
	client, cfg, err := cl.counterClient(logger)
	if err != nil {
		logger.Error("error reading configuration", log.Error(err))
		return err
	}

	ctx, cancel := context.WithTimeout(trace.NewContext(context.Background(), "increment"), cfg.RequestTimeout())
	defer cancel()

	value, err := client.IncrementByOne(ctx)
	if err != nil {
		logger.Error("failed incrementing counter", log.Error(err))
		return err
	}

	fmt.Fprintln(cl.out, value)
	return nil
}

func (cl *commandLine) incrementBy(cmd *cobra.Command, args []string) error {
	logger := cl.commandLineLogger()

	increment, err := display.ParseIncrement(args[0])
	if err != nil {
		logger.Error("invalid increment", log.Error(err))
		return err
	}

	client, cfg, err := cl.counterClient(logger)
	if err != nil {
		logger.Error("error reading configuration", log.Error(err))
		return err
	}

	ctx, cancel := context.WithTimeout(trace.NewContext(context.Background(), "increment-by"), cfg.RequestTimeout())
	defer cancel()

	value, err := client.IncrementByN(ctx, uint32(increment))
	if err != nil {
		logger.Error("failed incrementing counter", log.Error(err))
		return err
	}

	fmt.Fprintln(cl.out, value)
	return nil
}

// address needs a valid key only, the node is never contacted
func (cl *commandLine) address(cmd *cobra.Command, args []string) error {
	logger := cl.commandLineLogger()
	client, _, err := cl.counterClient(logger)
	if err != nil {
		logger.Error("error reading configuration", log.Error(err))
		return err
	}

	fmt.Fprintln(cl.out, client.SignerAddress())
	return nil
}
