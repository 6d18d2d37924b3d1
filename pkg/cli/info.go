/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/boostorg/scope/pkg/header"
	"github.com/boostorg/scope/pkg/recipe"
)

// metadataDoc describes the recipe itself.
type metadataDoc struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipe          recipe.Metadata   `json:"recipe" yaml:"recipe"`
	ExportPatterns  []string          `json:"exportPatterns" yaml:"exportPatterns"`
	PackagePatterns []string          `json:"packagePatterns" yaml:"packagePatterns"`
	MinCppStd       int               `json:"minCppStd" yaml:"minCppStd"`
	CompilerMinimum map[string]string `json:"compilerMinimum" yaml:"compilerMinimum"`
}

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:                  "info",
		EnableShellCompletion: true,
		Usage:                 "Print the recipe metadata or a package's conaninfo.yaml",
		Description: `Without --package, print the declared metadata, the exported and packaged
file patterns and the compiler versions that default to C++11. With
--package, print the identity document of a created package.

# Examples

  scopepkg info --format json
  scopepkg info --package build/package`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "package",
				Usage: "Package folder to read conaninfo.yaml from",
			},
			patchFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}
			if dir := cmd.String("package"); dir != "" {
				doc, err := recipe.ReadPackageInfo(dir)
				if err != nil {
					return err
				}
				return writeResult(ctx, cmd, doc)
			}
			return writeResult(ctx, cmd, newMetadataDoc(newRecipe(cmd)))
		},
	}
}

func newMetadataDoc(r *recipe.Recipe) *metadataDoc {
	doc := &metadataDoc{
		Recipe:          r.Metadata(),
		ExportPatterns:  r.ExportPatterns(),
		PackagePatterns: r.PackagePatterns(),
		MinCppStd:       recipe.MinCppStd,
		CompilerMinimum: make(map[string]string),
	}
	for _, c := range recipe.KnownCompilers() {
		if v, ok := recipe.MinCompilerVersionDefaultCxx11(c); ok {
			doc.CompilerMinimum[c] = v.String()
		}
	}
	doc.Init(header.KindRecipeMetadata, header.APIVersion, version)
	return doc
}
