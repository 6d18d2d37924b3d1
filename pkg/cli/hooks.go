/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// filesResult is the document written by the export and package commands.
type filesResult struct {
	Hook        string   `json:"hook" yaml:"hook"`
	Source      string   `json:"source" yaml:"source"`
	Destination string   `json:"destination" yaml:"destination"`
	Files       []string `json:"files" yaml:"files"`
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:                  "export",
		EnableShellCompletion: true,
		Usage:                 "Copy the license, headers and patch next to the recipe into a destination",
		Description: `Run the export_sources hook. Sources are taken from the parent of the recipe
folder: LICENSE, include/** and the compatibility patch. A pattern that
matches no file is an error.

# Examples

  scopepkg export --recipe-folder ./conan --dest ./build/export`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "recipe-folder",
				Value: "conan",
				Usage: "Folder holding the recipe; sources are read from its parent",
			},
			&cli.StringFlag{
				Name:     "dest",
				Aliases:  []string{"d"},
				Required: true,
				Usage:    "Destination folder",
			},
			patchFlag(),
			concurrencyFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}
			recipeFolder, dest := cmd.String("recipe-folder"), cmd.String("dest")
			files, err := newRecipe(cmd).ExportSources(ctx, recipeFolder, dest)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			return writeResult(ctx, cmd, filesResult{
				Hook:        "export_sources",
				Source:      recipeFolder,
				Destination: dest,
				Files:       files,
			})
		},
	}
}

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:                  "build",
		EnableShellCompletion: true,
		Usage:                 "Apply the compatibility patch to a source folder",
		Description: `Run the build hook: apply the patch to the source folder in place. Nothing is
written unless every file of the patch applies cleanly.

# Examples

  scopepkg build --source ./build/source
  scopepkg build --source ./build/source --patch patches/local.patch`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "source",
				Aliases:  []string{"s"},
				Required: true,
				Usage:    "Source folder to patch",
			},
			patchFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}
			res, err := newRecipe(cmd).Build(ctx, cmd.String("source"))
			if err != nil {
				return fmt.Errorf("build failed: %w", err)
			}
			return writeResult(ctx, cmd, res)
		},
	}
}

func packageCmd() *cli.Command {
	return &cli.Command{
		Name:                  "package",
		EnableShellCompletion: true,
		Usage:                 "Copy the headers and license into a package folder",
		Description: `Run the package hook: copy include/** and LICENSE from the source folder
into the package folder, preserving layout and file modes.

# Examples

  scopepkg package --source ./build/source --dest ./build/package`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "source",
				Aliases:  []string{"s"},
				Required: true,
				Usage:    "Source folder",
			},
			&cli.StringFlag{
				Name:     "dest",
				Aliases:  []string{"d"},
				Required: true,
				Usage:    "Package folder",
			},
			concurrencyFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}
			src, dest := cmd.String("source"), cmd.String("dest")
			files, err := newRecipe(cmd).Package(ctx, src, dest)
			if err != nil {
				return fmt.Errorf("package failed: %w", err)
			}
			return writeResult(ctx, cmd, filesResult{
				Hook:        "package",
				Source:      src,
				Destination: dest,
				Files:       files,
			})
		},
	}
}
