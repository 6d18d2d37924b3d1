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

package checksum

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/boostorg/scope/pkg/errors"
)

// ChecksumFileName is the standard name for checksum files.
const ChecksumFileName = "checksums.txt"

// GenerateChecksums creates a checksums.txt file containing SHA256 checksums
// for all provided files. Paths are written relative to dir with forward
// slashes, sorted, in the format understood by "sha256sum -c".
//
// Returns an error if the context is canceled, any file cannot be read,
// or the checksums file cannot be written.
func GenerateChecksums(ctx context.Context, dir string, files []string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeCanceled, "context cancelled", err)
	}

	checksums := make([]string, 0, len(files))

	for _, file := range files {
		sum, err := fileSHA256(file)
		if err != nil {
			return errors.WrapWithContext(errors.ErrCodeInternal, "failed to read file for checksum", err,
				map[string]any{"file": file})
		}

		relPath, err := filepath.Rel(dir, file)
		if err != nil {
			// If relative path fails, use absolute path
			relPath = file
		}

		checksums = append(checksums, fmt.Sprintf("%s  %s", sum, filepath.ToSlash(relPath)))
	}
	sort.Slice(checksums, func(i, j int) bool {
		return checksums[i][66:] < checksums[j][66:]
	})

	checksumPath := GetChecksumFilePath(dir)
	content := strings.Join(checksums, "\n") + "\n"

	if err := os.WriteFile(checksumPath, []byte(content), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to write checksums", err)
	}

	slog.Debug("checksums generated",
		"file_count", len(checksums),
		"path", checksumPath,
	)

	return nil
}

// GetChecksumFilePath returns the full path to the checksums.txt file
// in the given directory.
func GetChecksumFilePath(dir string) string {
	return filepath.Join(dir, ChecksumFileName)
}

// CollectFiles returns the absolute paths of all regular files under dir,
// excluding an existing checksums.txt at its root.
func CollectFiles(dir string) ([]string, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to resolve directory", err)
	}
	skip := GetChecksumFilePath(root)

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() || path == skip {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal, "failed to list files", err,
			map[string]any{"dir": dir})
	}
	sort.Strings(files)
	return files, nil
}

// Mismatch describes a file whose content no longer matches checksums.txt.
type Mismatch struct {
	Path     string `json:"path" yaml:"path"`
	Expected string `json:"expected" yaml:"expected"`
	Actual   string `json:"actual,omitempty" yaml:"actual,omitempty"`
	Missing  bool   `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// VerifyResult summarizes a checksum verification.
type VerifyResult struct {
	Dir        string     `json:"dir" yaml:"dir"`
	Verified   int        `json:"verified" yaml:"verified"`
	Mismatches []Mismatch `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
}

// OK reports whether every listed file matched.
func (r *VerifyResult) OK() bool {
	return len(r.Mismatches) == 0
}

// Verify re-hashes every file listed in dir's checksums.txt. Files that
// are missing or changed are reported as mismatches; only a missing or
// malformed checksums.txt is an error.
func Verify(ctx context.Context, dir string) (*VerifyResult, error) {
	data, err := os.ReadFile(GetChecksumFilePath(dir))
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "failed to read checksums", err,
			map[string]any{"dir": dir})
	}

	res := &VerifyResult{Dir: dir}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeCanceled, "context cancelled", err)
		}

		expected, rel, ok := strings.Cut(text, "  ")
		if !ok || len(expected) != sha256.Size*2 {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "malformed checksum line",
				map[string]any{"line": line, "text": text})
		}

		actual, err := fileSHA256(filepath.Join(dir, filepath.FromSlash(rel)))
		switch {
		case err != nil:
			res.Mismatches = append(res.Mismatches, Mismatch{Path: rel, Expected: expected, Missing: true})
		case actual != expected:
			res.Mismatches = append(res.Mismatches, Mismatch{Path: rel, Expected: expected, Actual: actual})
		default:
			res.Verified++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to scan checksums", err)
	}
	return res, nil
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
