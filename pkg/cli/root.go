/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/boostorg/scope/pkg/errors"
	"github.com/boostorg/scope/pkg/logging"
)

const (
	name           = "scopepkg"
	versionDefault = "dev"
)

// Exit codes returned by Execute.
const (
	ExitOK       = 0
	ExitError    = 1
	ExitCanceled = 2
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// newRootCmd builds the scopepkg command tree.
func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Usage:                 "Boost.Scope package recipe",
		EnableShellCompletion: true,
		Description: `Runs the Boost.Scope recipe hooks: validate the compiler settings, export
the sources, apply the compatibility patch, package the headers and compute
the package id. The create command runs all of them in order.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvVarLogLevel),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger := logging.NewStructuredLoggerWithWriter(cmd.Root().ErrWriter, name, version, cmd.String("log-level"))
			slog.SetDefault(logger)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			validateCmd(),
			exportCmd(),
			buildCmd(),
			packageCmd(),
			idCmd(),
			createCmd(),
			verifyCmd(),
			infoCmd(),
		},
	}
}

// Execute runs the CLI with os.Args and exits with ExitError on failure, or
// ExitCanceled when SIGINT or SIGTERM interrupted the run.
func Execute() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCode(ctx, err)
	}
	return ExitOK
}

// exitCode maps a command error to a process exit code.
func exitCode(ctx context.Context, err error) int {
	switch {
	case err == nil:
		return ExitOK
	case ctx.Err() != nil,
		stderrors.Is(err, context.Canceled),
		stderrors.Is(err, context.DeadlineExceeded),
		errors.HasCode(err, errors.ErrCodeCanceled):
		return ExitCanceled
	default:
		return ExitError
	}
}
