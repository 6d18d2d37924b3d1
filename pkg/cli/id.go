/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/boostorg/scope/pkg/recipe"
)

func idCmd() *cli.Command {
	return &cli.Command{
		Name:                  "id",
		EnableShellCompletion: true,
		Usage:                 "Print the package identity for the given settings",
		Description: `Run the package_id hook. Boost.Scope is header-only, so every compiler and
build type maps to the same package id.

# Examples

  scopepkg id --compiler gcc --compiler-version 13 --build-type Release`,
		Flags: append(settingsFlags(), outputFlag(), formatFlag()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}
			s, err := settingsFromCmd(ctx, cmd)
			if err != nil {
				return err
			}

			r := newRecipe(cmd)
			info := recipe.NewInfo(s, r.Metadata())
			r.PackageID(info)
			return writeResult(ctx, cmd, recipe.NewPackageInfo(r.Metadata(), info, version))
		},
	}
}
