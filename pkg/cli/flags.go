/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/boostorg/scope/pkg/defaults"
	"github.com/boostorg/scope/pkg/recipe"
	"github.com/boostorg/scope/pkg/serializer"
)

// Environment variables read by the settings flags.
const (
	envCompiler        = "SCOPEPKG_COMPILER"
	envCompilerVersion = "SCOPEPKG_COMPILER_VERSION"
	envCppStd          = "SCOPEPKG_CPPSTD"
	envBuildType       = "SCOPEPKG_BUILD_TYPE"
	envProfile         = "SCOPEPKG_PROFILE"
)

// Flags are built per command; urfave flags hold their parsed value.

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path for the result document (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func patchFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "patch",
		Value: recipe.CompatPatch,
		Usage: "Patch applied by the build hook, relative to the source folder",
	}
}

func concurrencyFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "concurrency",
		Value: defaults.CopyConcurrency,
		Usage: "Maximum number of files copied in parallel",
	}
}

// settingsFlags describe the compiler settings shared by validate, id and create.
func settingsFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "profile",
			Usage:   "Settings profile (YAML or JSON file, or http(s) URL); flags override its values",
			Sources: cli.EnvVars(envProfile),
		},
		&cli.StringFlag{
			Name:    "compiler",
			Usage:   fmt.Sprintf("Compiler family (known values: %s)", strings.Join(recipe.KnownCompilers(), ", ")),
			Sources: cli.EnvVars(envCompiler),
		},
		&cli.StringFlag{
			Name:    "compiler-version",
			Usage:   "Compiler version (e.g., 13, 14.2, 193)",
			Sources: cli.EnvVars(envCompilerVersion),
		},
		&cli.StringFlag{
			Name:    "cppstd",
			Usage:   "C++ standard (e.g., 17, gnu20); empty uses the compiler default",
			Sources: cli.EnvVars(envCppStd),
		},
		&cli.StringFlag{
			Name:    "build-type",
			Usage:   "Build type (e.g., Release, Debug)",
			Sources: cli.EnvVars(envBuildType),
		},
	}
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// settingsFromCmd loads the profile, if any, and applies the settings flags on top.
func settingsFromCmd(ctx context.Context, cmd *cli.Command) (recipe.Settings, error) {
	var base recipe.Settings
	if path := cmd.String("profile"); path != "" {
		slog.Debug("loading settings profile", "uri", path)
		profile, err := serializer.FromFile[recipe.Settings](ctx, path)
		if err != nil {
			return recipe.Settings{}, fmt.Errorf("failed to load profile from %q: %w", path, err)
		}
		base = *profile
	}

	s := base.Merge(recipe.Settings{
		Compiler: recipe.Compiler{
			Name:    cmd.String("compiler"),
			Version: cmd.String("compiler-version"),
			CppStd:  cmd.String("cppstd"),
		},
		BuildType: cmd.String("build-type"),
	})
	// An explicit standard decides validation on its own.
	if s.Compiler.Name == "" && s.Compiler.CppStd == "" {
		return recipe.Settings{}, fmt.Errorf("compiler is required without --cppstd: set --compiler, %s or a profile", envCompiler)
	}
	return s, nil
}

// newRecipe builds the recipe from the shared flags.
func newRecipe(cmd *cli.Command) *recipe.Recipe {
	opts := []recipe.Option{
		recipe.WithLogger(slog.Default()),
		recipe.WithToolVersion(version),
	}
	if cmd.IsSet("patch") {
		opts = append(opts, recipe.WithPatchFile(cmd.String("patch")))
	}
	if cmd.IsSet("concurrency") {
		opts = append(opts, recipe.WithCopyConcurrency(int(cmd.Int("concurrency"))))
	}
	return recipe.New(opts...)
}

// writeResult serializes doc to --output, or to the root writer.
func writeResult(ctx context.Context, cmd *cli.Command, doc any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	var w *serializer.Writer
	if path := cmd.String("output"); path != "" {
		w = serializer.NewFileWriterOrStdout(outFormat, path)
	} else {
		w = serializer.NewWriter(outFormat, cmd.Root().Writer)
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := w.Serialize(ctx, doc); err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	return nil
}

// parseDependencies converts name=version pairs into a map.
func parseDependencies(values []string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	deps := make(map[string]string, len(values))
	for _, v := range values {
		k, ver, ok := strings.Cut(v, "=")
		k, ver = strings.TrimSpace(k), strings.TrimSpace(ver)
		if !ok || k == "" || ver == "" {
			return nil, fmt.Errorf("invalid --dependency %q: expected name=version", v)
		}
		deps[k] = ver
	}
	return deps, nil
}
