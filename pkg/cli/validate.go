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
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Check that the compiler settings can build Boost.Scope",
		Description: `Run the validate hook for the given compiler settings.

An explicit --cppstd must be 11 or newer. Without one, the compiler version is
compared with the first version of that compiler which defaults to C++11.
Compilers the recipe does not know pass with a warning.

The validation result is written even when validation fails; the command then
exits with a non-zero status.

# Examples

  scopepkg validate --compiler gcc --compiler-version 13
  scopepkg validate --compiler apple-clang --compiler-version 15 --cppstd 17
  scopepkg validate --profile profiles/msvc.yaml --format json`,
		Flags: append(settingsFlags(), outputFlag(), formatFlag()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}
			s, err := settingsFromCmd(ctx, cmd)
			if err != nil {
				return err
			}

			res, validateErr := newRecipe(cmd).Validate(ctx, s)
			if err := writeResult(ctx, cmd, res); err != nil {
				return err
			}
			if validateErr != nil {
				return fmt.Errorf("validation failed: %w", validateErr)
			}

			slog.Info("validation passed",
				"compiler", s.Compiler.Name,
				"compilerVersion", s.Compiler.Version,
				"basis", res.Basis,
				"warnings", len(res.Warnings))
			return nil
		},
	}
}
