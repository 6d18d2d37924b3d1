/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/boostorg/scope/pkg/oci"
	"github.com/boostorg/scope/pkg/recipe"
)

// AnnotationPackageID carries the package id on published manifests.
const AnnotationPackageID = "org.boost.scope.package-id"

// createResult is the create command document: the pipeline result plus
// the publication, when one was requested.
type createResult struct {
	recipe.CreateResult `json:",inline" yaml:",inline"`

	Push *oci.PushResult `json:"push,omitempty" yaml:"push,omitempty"`
}

func createCmd() *cli.Command {
	flags := append(settingsFlags(),
		&cli.StringFlag{
			Name:  "recipe-folder",
			Value: "conan",
			Usage: "Folder holding the recipe; sources are read from its parent",
		},
		&cli.StringFlag{
			Name:    "work-dir",
			Aliases: []string{"w"},
			Value:   "build",
			Usage:   "Folder receiving the export, source and package folders",
		},
		&cli.StringFlag{
			Name:    "orchestrator-version",
			Usage:   "Package manager version, checked against " + recipe.RequiredOrchestratorVersion,
			Sources: cli.EnvVars("SCOPEPKG_ORCHESTRATOR_VERSION"),
		},
		&cli.StringSliceFlag{
			Name:  "dependency",
			Usage: "Resolved dependency version as name=version (e.g., boost=1.84.0); repeatable",
		},
		&cli.BoolFlag{
			Name:  "skip-checksums",
			Usage: "Do not write checksums.txt into the package folder",
		},
		&cli.StringFlag{
			Name:  "push",
			Usage: "Publish the package folder to an OCI registry (oci://registry/repository[:tag])",
		},
		&cli.StringFlag{
			Name:  "created",
			Usage: "Fixed RFC 3339 created annotation for reproducible pushes",
		},
		&cli.BoolFlag{
			Name:  "plain-http",
			Usage: "Use HTTP instead of HTTPS for the registry connection",
		},
		&cli.BoolFlag{
			Name:  "insecure-tls",
			Usage: "Skip TLS certificate verification for the registry",
		},
		&cli.StringFlag{
			Name:  "metrics-file",
			Usage: "Write hook metrics in Prometheus text format to this file",
		},
		patchFlag(),
		concurrencyFlag(),
		outputFlag(),
		formatFlag(),
	)

	return &cli.Command{
		Name:                  "create",
		EnableShellCompletion: true,
		Usage:                 "Run every recipe hook and produce a package folder",
		Description: `Run validate, export_sources, build, package and package_id in order against
a work directory:

  <work-dir>/export   pristine exported sources
  <work-dir>/source   patched copy of the export
  <work-dir>/package  headers, LICENSE, conaninfo.yaml and checksums.txt

The folders are replaced on every run.

# Examples

  scopepkg create --compiler gcc --compiler-version 13 --work-dir build
  scopepkg create --profile gcc13.yaml --dependency boost=1.84.0 \
    --push oci://localhost:5000/conan/boost_scope --plain-http`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}
			s, err := settingsFromCmd(ctx, cmd)
			if err != nil {
				return err
			}
			deps, err := parseDependencies(cmd.StringSlice("dependency"))
			if err != nil {
				return err
			}

			var target *oci.Reference
			if push := cmd.String("push"); push != "" {
				if target, err = parsePushTarget(push); err != nil {
					return err
				}
			}

			r := newRecipe(cmd)
			res, err := r.Create(ctx, recipe.CreateOptions{
				RecipeFolder:        cmd.String("recipe-folder"),
				WorkDir:             cmd.String("work-dir"),
				Settings:            s,
				OrchestratorVersion: cmd.String("orchestrator-version"),
				Dependencies:        deps,
				SkipChecksums:       cmd.Bool("skip-checksums"),
			})
			if metricsErr := writeMetrics(cmd.String("metrics-file")); metricsErr != nil {
				slog.Warn("failed to write metrics", "error", metricsErr)
			}
			if err != nil {
				return fmt.Errorf("create failed: %w", err)
			}

			out := createResult{CreateResult: *res}
			if target != nil {
				out.Push, err = oci.Push(ctx, oci.PushOptions{
					SourceDir:             res.PackageDir,
					Reference:             target,
					Annotations:           packageAnnotations(r.Metadata(), res.PackageID),
					ReproducibleTimestamp: cmd.String("created"),
					PlainHTTP:             cmd.Bool("plain-http"),
					InsecureTLS:           cmd.Bool("insecure-tls"),
				})
				if err != nil {
					return fmt.Errorf("push failed: %w", err)
				}
				slog.Info("package pushed", "reference", out.Push.Reference, "digest", out.Push.Digest)
			}

			return writeResult(ctx, cmd, out)
		},
	}
}

// parsePushTarget parses --push, defaulting the tag to the package version.
func parsePushTarget(s string) (*oci.Reference, error) {
	ref, err := oci.ParseOutputTarget(s)
	if err != nil {
		return nil, err
	}
	if !ref.IsOCI {
		return nil, fmt.Errorf("invalid --push %q: expected %sregistry/repository[:tag]", s, oci.URIScheme)
	}
	if ref.Tag == "" {
		ref = ref.WithTag(recipe.PackageVersion)
	}
	return ref, nil
}

func packageAnnotations(m recipe.Metadata, packageID string) map[string]string {
	return map[string]string{
		ociv1.AnnotationTitle:    m.Reference(),
		ociv1.AnnotationVersion:  m.Version,
		ociv1.AnnotationLicenses: m.License,
		ociv1.AnnotationSource:   m.URL,
		ociv1.AnnotationURL:      m.Homepage,
		AnnotationPackageID:      packageID,
	}
}

// writeMetrics dumps the default registry to path. An empty path is a no-op.
func writeMetrics(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
