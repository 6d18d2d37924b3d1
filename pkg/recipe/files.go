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
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/boostorg/scope/pkg/errors"
)

// MatchFiles returns the regular files under root matched by patterns,
// as slash-separated paths relative to root, sorted and without duplicates.
// Symlinks to regular files are matched under their own name; a dangling
// symlink fails with a NOT_FOUND error, as does a pattern that matches no
// file.
func MatchFiles(root string, patterns []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "source folder does not exist", err,
				map[string]any{"source": root})
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to stat source folder", err)
	}
	if !info.IsDir() {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "source is not a directory",
			map[string]any{"source": root})
	}

	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		matched := 0
		walkErr := doublestar.GlobWalk(fsys, pattern, func(p string, d fs.DirEntry) error {
			if d.Type()&fs.ModeSymlink != 0 {
				target, err := fs.Stat(fsys, p)
				if err != nil {
					return errors.WrapWithContext(errors.ErrCodeNotFound, "symlink target does not exist", err,
						map[string]any{"file": p, "source": root})
				}
				if !target.Mode().IsRegular() {
					return nil
				}
			} else if !d.Type().IsRegular() {
				return nil
			}
			matched++
			if !seen[p] {
				seen[p] = true
				files = append(files, p)
			}
			return nil
		})
		if walkErr != nil {
			var se *errors.StructuredError
			if stderrors.As(walkErr, &se) {
				return nil, walkErr
			}
			return nil, errors.WrapWithContext(errors.ErrCodeInternal, "failed to match source files", walkErr,
				map[string]any{"pattern": pattern, "source": root})
		}
		if matched == 0 {
			return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
				fmt.Sprintf("no files match %q", pattern), fs.ErrNotExist,
				map[string]any{"pattern": pattern, "source": root})
		}
	}

	sort.Strings(files)
	return files, nil
}

// copyPatterns copies the files matched by patterns from src to dst,
// keeping their relative layout and permissions.
func (r *Recipe) copyPatterns(ctx context.Context, hook, src, dst string, patterns []string) ([]string, error) {
	files, err := MatchFiles(src, patterns)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for _, rel := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return copyFile(
				filepath.Join(src, filepath.FromSlash(rel)),
				filepath.Join(dst, filepath.FromSlash(rel)),
			)
		})
	}
	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrap(errors.ErrCodeCanceled, hook+" canceled", ctxErr)
		}
		return nil, err
	}

	filesCopied.WithLabelValues(hook).Add(float64(len(files)))
	r.logger.Info("files copied",
		slog.String("hook", hook),
		slog.String("source", src),
		slog.String("destination", dst),
		slog.Int("count", len(files)))

	return files, nil
}

// copyFile copies a single regular file, creating parent directories. A
// symlink is copied as the file it points to.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to open source file", err,
			map[string]any{"file": src})
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to stat source file", err,
			map[string]any{"file": src})
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to create destination directory", err,
			map[string]any{"dir": filepath.Dir(dst)})
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to create destination file", err,
			map[string]any{"file": dst})
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to copy file", err,
			map[string]any{"source": src, "destination": dst})
	}
	if err := out.Close(); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to close destination file", err,
			map[string]any{"file": dst})
	}

	// OpenFile is subject to the umask; match the source mode exactly.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to set file mode", err,
			map[string]any{"file": dst})
	}
	return nil
}
