// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/boostorg/scope/pkg/checksum"
	"github.com/boostorg/scope/pkg/errors"
	"github.com/boostorg/scope/pkg/header"
)

// Layout of a create work directory.
const (
	ExportDirName  = "export"
	SourceDirName  = "source"
	PackageDirName = "package"

	// InfoFileName is the package identity document written into the package folder.
	InfoFileName = "conaninfo.yaml"
)

// CreateOptions configures a full recipe run.
type CreateOptions struct {
	// RecipeFolder is the folder holding the recipe; sources are taken
	// from its parent.
	RecipeFolder string

	// WorkDir receives the export, source and package folders. Existing
	// folders of those names are replaced.
	WorkDir string

	// Settings is the build configuration to validate and record.
	Settings Settings

	// OrchestratorVersion, when set, is checked against the required
	// orchestrator version.
	OrchestratorVersion string

	// Dependencies maps a requirement name to its resolved version, e.g.
	// {"boost": "1.84.0"}. Each entry is checked against the declared range.
	Dependencies map[string]string

	// SkipChecksums disables checksums.txt generation.
	SkipChecksums bool
}

// CreateResult describes a completed recipe run.
type CreateResult struct {
	header.Header `json:",inline" yaml:",inline"`

	BuildID    string        `json:"buildId" yaml:"buildId"`
	Reference  string        `json:"reference" yaml:"reference"`
	PackageID  string        `json:"packageId" yaml:"packageId"`
	ExportDir  string        `json:"exportDir" yaml:"exportDir"`
	SourceDir  string        `json:"sourceDir" yaml:"sourceDir"`
	PackageDir string        `json:"packageDir" yaml:"packageDir"`
	Files      []string      `json:"files" yaml:"files"`
	TotalFiles int           `json:"totalFiles" yaml:"totalFiles"`
	TotalSize  int64         `json:"totalSize" yaml:"totalSize"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
	Patch      *PatchResult  `json:"patch,omitempty" yaml:"patch,omitempty"`
	Validation *Validation   `json:"validation" yaml:"validation"`
}

// Create runs validate, export_sources, build, package and package_id in
// order, stopping at the first failure.
func (r *Recipe) Create(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	start := time.Now()
	buildID := uuid.New().String()
	logger := r.logger.With(slog.String("buildId", buildID))

	if opts.RecipeFolder == "" || opts.WorkDir == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "recipe folder and work directory are required")
	}

	res := &CreateResult{
		BuildID:    buildID,
		Reference:  r.meta.Reference(),
		ExportDir:  filepath.Join(opts.WorkDir, ExportDirName),
		SourceDir:  filepath.Join(opts.WorkDir, SourceDirName),
		PackageDir: filepath.Join(opts.WorkDir, PackageDirName),
	}
	res.Init(header.KindCreateResult, header.APIVersion, r.toolVersion)
	res.Metadata["build-id"] = buildID

	logger.Info("creating package",
		slog.String("reference", res.Reference),
		slog.String("compiler", opts.Settings.Compiler.Name),
		slog.String("compilerVersion", opts.Settings.Compiler.Version),
		slog.String("workDir", opts.WorkDir))

	validation, err := r.Validate(ctx, opts.Settings)
	res.Validation = validation
	if err != nil {
		return nil, err
	}
	if err := r.checkEnvironment(opts); err != nil {
		return nil, err
	}

	for _, dir := range []string{res.ExportDir, res.SourceDir, res.PackageDir} {
		if err := os.RemoveAll(dir); err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInternal, "failed to clean work directory", err,
				map[string]any{"dir": dir})
		}
	}

	if _, err := r.ExportSources(ctx, opts.RecipeFolder, res.ExportDir); err != nil {
		return nil, err
	}

	// Build in a copy so the export folder keeps the pristine sources.
	if _, err := r.copyPatterns(ctx, SourceDirName, res.ExportDir, res.SourceDir, []string{"**"}); err != nil {
		return nil, err
	}

	if res.Patch, err = r.Build(ctx, res.SourceDir); err != nil {
		return nil, err
	}

	if res.Files, err = r.Package(ctx, res.SourceDir, res.PackageDir); err != nil {
		return nil, err
	}

	info := NewInfo(opts.Settings, r.meta)
	r.PackageID(info)
	res.PackageID = info.ID()

	if err := writePackageInfo(res.PackageDir, NewPackageInfo(r.meta, info, r.toolVersion)); err != nil {
		return nil, err
	}

	if !opts.SkipChecksums {
		files, err := checksum.CollectFiles(res.PackageDir)
		if err != nil {
			return nil, err
		}
		if err := checksum.GenerateChecksums(ctx, res.PackageDir, files); err != nil {
			return nil, err
		}
	}

	if res.TotalSize, err = dirSize(res.PackageDir); err != nil {
		return nil, err
	}
	res.TotalFiles = len(res.Files)
	res.Duration = time.Since(start)

	logger.Info("package created",
		slog.String("packageId", res.PackageID),
		slog.Int("files", res.TotalFiles),
		slog.Int64("sizeBytes", res.TotalSize),
		slog.Float64("durationSec", res.Duration.Seconds()),
		slog.String("packageDir", res.PackageDir))

	return res, nil
}

// checkEnvironment validates the orchestrator and resolved dependency versions.
func (r *Recipe) checkEnvironment(opts CreateOptions) error {
	if opts.OrchestratorVersion != "" {
		if err := r.meta.CheckOrchestrator(opts.OrchestratorVersion); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(opts.Dependencies))
	for name := range opts.Dependencies {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		idx := slices.IndexFunc(r.meta.Requires, func(req Requirement) bool { return req.Name == name })
		if idx < 0 {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("%s is not a requirement of %s", name, r.meta.Reference()),
				map[string]any{"dependency": name})
		}
		req := r.meta.Requires[idx]
		ok, err := req.SatisfiedBy(opts.Dependencies[name])
		if err != nil {
			return err
		}
		if !ok {
			return errors.NewWithContext(errors.ErrCodeInvalidConfiguration,
				fmt.Sprintf("%s %s does not satisfy %s", name, opts.Dependencies[name], req),
				map[string]any{"dependency": name, "version": opts.Dependencies[name], "range": req.Range})
		}
	}
	return nil
}

// writePackageInfo writes doc as conaninfo.yaml into dir.
func writePackageInfo(dir string, doc *PackageInfo) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to serialize package info", err)
	}
	if err := os.WriteFile(filepath.Join(dir, InfoFileName), data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to write package info", err)
	}
	return nil
}

// ReadPackageInfo loads the conaninfo.yaml written by Create from dir.
func ReadPackageInfo(dir string) (*PackageInfo, error) {
	data, err := os.ReadFile(filepath.Join(dir, InfoFileName))
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "failed to read package info", err,
			map[string]any{"dir": dir})
	}
	var doc PackageInfo
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to parse package info", err)
	}
	return &doc, nil
}

func dirSize(dir string) (int64, error) {
	var total int64
	err := filepath.WalkDir(dir, func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			total += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, "failed to measure package size", err)
	}
	return total, nil
}
