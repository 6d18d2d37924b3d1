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
	"log/slog"
	"path/filepath"
	"time"

	"github.com/boostorg/scope/pkg/defaults"
	"github.com/boostorg/scope/pkg/errors"
)

// Hook names, in the order the orchestrator invokes them.
const (
	HookValidate      = "validate"
	HookExportSources = "export_sources"
	HookBuild         = "build"
	HookPackage       = "package"
	HookPackageID     = "package_id"
)

// Source layout relative to the source root.
const (
	// LicenseFile is the license shipped with the headers.
	LicenseFile = "LICENSE"
	// IncludePattern selects every file under include/.
	IncludePattern = "include/**"
	// CompatPatch adapts the sources to Boost 1.83.
	CompatPatch = "conan/1.83_compat.patch"
)

// Recipe describes how to validate, export, patch and package Boost.Scope.
// It holds no mutable state; every hook is independent given its inputs.
type Recipe struct {
	meta        Metadata
	logger      *slog.Logger
	patchFile   string
	exports     []string
	packages    []string
	concurrency int
	toolVersion string
}

// Option is a functional option for configuring a Recipe.
type Option func(*Recipe)

// WithLogger sets the logger used for hook warnings and progress.
func WithLogger(l *slog.Logger) Option {
	return func(r *Recipe) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetadata replaces the declared metadata.
func WithMetadata(m Metadata) Option {
	return func(r *Recipe) {
		r.meta = m
	}
}

// WithPatchFile overrides the patch applied by the build hook, relative to
// the source folder. The patch is also exported.
func WithPatchFile(path string) Option {
	return func(r *Recipe) {
		if path != "" {
			r.patchFile = filepath.ToSlash(path)
		}
	}
}

// WithCopyConcurrency bounds parallel file copies within a hook.
// Values below one are ignored.
func WithCopyConcurrency(n int) Option {
	return func(r *Recipe) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithToolVersion sets the version stamped into result document headers.
func WithToolVersion(v string) Option {
	return func(r *Recipe) {
		r.toolVersion = v
	}
}

// New returns the Boost.Scope recipe.
func New(opts ...Option) *Recipe {
	r := &Recipe{
		meta:        DefaultMetadata(),
		logger:      slog.Default(),
		patchFile:   CompatPatch,
		concurrency: defaults.CopyConcurrency,
		toolVersion: "dev",
	}
	for _, opt := range opts {
		opt(r)
	}
	r.exports = []string{LicenseFile, IncludePattern, r.patchFile}
	r.packages = []string{IncludePattern, LicenseFile}
	return r
}

// Metadata returns the declared metadata.
func (r *Recipe) Metadata() Metadata {
	return r.meta
}

// PatchFile returns the patch path relative to the source folder.
func (r *Recipe) PatchFile() string {
	return r.patchFile
}

// ExportPatterns returns the patterns copied by ExportSources, in order.
func (r *Recipe) ExportPatterns() []string {
	return append([]string(nil), r.exports...)
}

// PackagePatterns returns the patterns copied by Package, in order.
func (r *Recipe) PackagePatterns() []string {
	return append([]string(nil), r.packages...)
}

// ExportSources copies the license, the headers and the compatibility patch
// from the parent of recipeFolder into dest. It returns the copied paths
// relative to dest. A pattern that matches nothing fails with a NOT_FOUND
// error.
func (r *Recipe) ExportSources(ctx context.Context, recipeFolder, dest string) ([]string, error) {
	src := filepath.Join(recipeFolder, "..")
	var copied []string
	err := r.observe(ctx, HookExportSources, func(ctx context.Context) error {
		var err error
		copied, err = r.copyPatterns(ctx, HookExportSources, src, dest, r.exports)
		return err
	})
	return copied, err
}

// Build applies the compatibility patch to sourceFolder in place.
// Any failure to parse or apply the patch is a PATCH_FAILED error.
func (r *Recipe) Build(ctx context.Context, sourceFolder string) (*PatchResult, error) {
	var res *PatchResult
	err := r.observe(ctx, HookBuild, func(ctx context.Context) error {
		var err error
		res, err = ApplyPatch(ctx, sourceFolder, filepath.Join(sourceFolder, filepath.FromSlash(r.patchFile)))
		return err
	})
	return res, err
}

// Package copies the headers and the license from sourceFolder into
// packageFolder and returns the copied paths relative to packageFolder.
func (r *Recipe) Package(ctx context.Context, sourceFolder, packageFolder string) ([]string, error) {
	var copied []string
	err := r.observe(ctx, HookPackage, func(ctx context.Context) error {
		var err error
		copied, err = r.copyPatterns(ctx, HookPackage, sourceFolder, packageFolder, r.packages)
		return err
	})
	return copied, err
}

// PackageID clears every configuration-derived field of info. A header-only
// package has one binary identity regardless of compiler or build type.
// A nil info is a no-op.
func (r *Recipe) PackageID(info *Info) {
	if info == nil {
		return
	}
	_ = r.observe(context.Background(), HookPackageID, func(context.Context) error {
		info.Clear()
		return nil
	})
}

// observe runs a hook, recording its duration and failures.
func (r *Recipe) observe(ctx context.Context, hook string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		hookFailures.WithLabelValues(hook).Inc()
		return errors.Wrap(errors.ErrCodeCanceled, hook+" canceled", err)
	}

	start := time.Now()
	r.logger.Debug("running hook", slog.String("hook", hook))

	err := fn(ctx)
	hookDuration.WithLabelValues(hook).Observe(time.Since(start).Seconds())
	if err != nil {
		hookFailures.WithLabelValues(hook).Inc()
		r.logger.Debug("hook failed", slog.String("hook", hook), slog.String("error", err.Error()))
		return err
	}
	return nil
}
