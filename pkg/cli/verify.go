/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/boostorg/scope/pkg/checksum"
)

func verifyCmd() *cli.Command {
	return &cli.Command{
		Name:                  "verify",
		EnableShellCompletion: true,
		Usage:                 "Check a package folder against its checksums.txt",
		Description: `Re-hash every file listed in checksums.txt and report missing or modified
files. The command fails when any file does not match.

# Examples

  scopepkg verify --dir build/package`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "dir",
				Required: true,
				Usage:    "Package folder containing checksums.txt",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}
			res, err := checksum.Verify(ctx, cmd.String("dir"))
			if err != nil {
				return fmt.Errorf("verify failed: %w", err)
			}
			if err := writeResult(ctx, cmd, res); err != nil {
				return err
			}
			if !res.OK() {
				return fmt.Errorf("verify failed: %d file(s) do not match", len(res.Mismatches))
			}
			slog.Info("checksums verified", "dir", res.Dir, "files", res.Verified)
			return nil
		},
	}
}
