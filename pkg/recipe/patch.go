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
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"

	"github.com/boostorg/scope/pkg/errors"
)

// PatchResult lists the files a patch touched, relative to the source folder.
type PatchResult struct {
	Patch    string   `json:"patch" yaml:"patch"`
	Modified []string `json:"modified,omitempty" yaml:"modified,omitempty"`
	Created  []string `json:"created,omitempty" yaml:"created,omitempty"`
	Deleted  []string `json:"deleted,omitempty" yaml:"deleted,omitempty"`
}

// stagedFile is the content of a path as seen by the remaining patch
// sections. Paths are loaded from disk on first use.
type stagedFile struct {
	content []byte
	mode    os.FileMode
	exists  bool
	dirty   bool
}

// patchState accumulates patched content keyed by slash path, so several
// sections touching one path apply on top of each other.
type patchState struct {
	root  string
	files map[string]*stagedFile
	order []string
}

func newPatchState(root string) *patchState {
	return &patchState{root: root, files: make(map[string]*stagedFile)}
}

func (s *patchState) path(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

// lookup returns the staged state of rel, reading it from disk when no
// earlier section touched it. A path that cannot be stat'ed is absent.
func (s *patchState) lookup(rel string) (*stagedFile, error) {
	if f, ok := s.files[rel]; ok {
		return f, nil
	}
	f := &stagedFile{mode: 0o644}
	if info, err := os.Stat(s.path(rel)); err == nil {
		if f.content, err = os.ReadFile(s.path(rel)); err != nil {
			return nil, err
		}
		f.mode = info.Mode().Perm()
		f.exists = true
	}
	s.files[rel] = f
	s.order = append(s.order, rel)
	return f, nil
}

// ApplyPatch applies the unified diff at patchPath to the tree rooted at
// root. Every section is applied in memory first, later sections on top of
// earlier ones; nothing is written unless all sections apply cleanly.
// Patched files are then staged next to their targets and renamed into
// place, so a staging failure leaves the tree untouched. Failures are
// PATCH_FAILED errors carrying the patch tool diagnostic.
func ApplyPatch(ctx context.Context, root, patchPath string) (*PatchResult, error) {
	data, err := os.ReadFile(patchPath)
	if err != nil {
		return nil, patchError("failed to read patch", patchPath, "", err)
	}

	files, _, err := gitdiff.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, patchError("failed to parse patch", patchPath, "", err)
	}
	if len(files) == 0 {
		return nil, patchError("patch contains no file changes", patchPath, "", nil)
	}
	stripPrefixes(files, scanFileHeaders(data))

	res := &PatchResult{Patch: filepath.ToSlash(patchPath)}
	state := newPatchState(root)

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeCanceled, "patch canceled", err)
		}
		if err := state.apply(patchPath, f); err != nil {
			return nil, err
		}

		switch {
		case f.IsDelete:
			res.Deleted = appendUnique(res.Deleted, f.OldName)
		case f.IsNew:
			res.Created = appendUnique(res.Created, f.NewName)
		case !slices.Contains(res.Created, f.NewName):
			res.Modified = appendUnique(res.Modified, f.NewName)
		}
	}

	if err := state.commit(patchPath); err != nil {
		return nil, err
	}
	return res, nil
}

// apply computes the patched content of a single file section.
func (s *patchState) apply(patchPath string, f *gitdiff.File) error {
	target := f.NewName
	if f.IsDelete {
		target = f.OldName
	}
	if !filepath.IsLocal(filepath.FromSlash(target)) || (f.OldName != "" && !filepath.IsLocal(filepath.FromSlash(f.OldName))) {
		return patchError("patch path escapes the source folder", patchPath, target, nil)
	}

	var src []byte
	mode := os.FileMode(0o644)
	var old *stagedFile
	if f.IsNew {
		cur, err := s.lookup(f.NewName)
		if err != nil {
			return patchError("failed to read file created by patch", patchPath, f.NewName, err)
		}
		if cur.exists {
			return patchError("file created by patch already exists", patchPath, f.NewName, fs.ErrExist)
		}
	} else {
		var err error
		if old, err = s.lookup(f.OldName); err != nil {
			return patchError("failed to read file to patch", patchPath, f.OldName, err)
		}
		if !old.exists {
			return patchError("file to patch does not exist", patchPath, f.OldName, fs.ErrNotExist)
		}
		src, mode = old.content, old.mode
	}
	if f.NewMode != 0 {
		mode = f.NewMode.Perm()
	}

	var out bytes.Buffer
	if err := gitdiff.Apply(&out, bytes.NewReader(src), f); err != nil {
		return patchError("patch does not apply", patchPath, target, err)
	}

	if f.IsDelete {
		old.content, old.exists, old.dirty = nil, false, true
		return nil
	}
	dst, err := s.lookup(f.NewName)
	if err != nil {
		return patchError("failed to read patched file", patchPath, f.NewName, err)
	}
	dst.content, dst.mode, dst.exists, dst.dirty = out.Bytes(), mode, true, true
	if f.IsRename && old != nil && f.OldName != f.NewName {
		old.content, old.exists, old.dirty = nil, false, true
	}
	return nil
}

// commit writes every changed path once. New content is staged in
// temporary files beside each target first; the targets are only replaced
// once every temporary file was written.
func (s *patchState) commit(patchPath string) error {
	staged := make(map[string]string)
	cleanup := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}

	for _, rel := range s.order {
		f := s.files[rel]
		if !f.dirty || !f.exists {
			continue
		}
		tmp, err := stageFile(s.path(rel), f.content, f.mode)
		if err != nil {
			cleanup()
			return patchError("failed to write patched file", patchPath, rel, err)
		}
		staged[rel] = tmp
	}

	for _, rel := range s.order {
		f := s.files[rel]
		if !f.dirty {
			continue
		}
		if !f.exists {
			if err := os.Remove(s.path(rel)); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
				cleanup()
				return patchError("failed to remove patched file", patchPath, rel, err)
			}
			continue
		}
		if err := os.Rename(staged[rel], s.path(rel)); err != nil {
			cleanup()
			return patchError("failed to write patched file", patchPath, rel, err)
		}
		delete(staged, rel)
	}
	return nil
}

// stageFile writes content to a temporary file in dst's directory and
// returns its path.
func stageFile(dst string, content []byte, mode os.FileMode) (string, error) {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".patch-*")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// fileHeader is the raw header of one file section of a patch.
type fileHeader struct {
	git      bool
	old, new string
}

const devNull = "/dev/null"

// scanFileHeaders lists the file sections of a patch in order. go-gitdiff
// strips the a/ and b/ prefixes of git headers but keeps them on plain
// unified headers, which need the raw names to be normalized.
func scanFileHeaders(data []byte) []fileHeader {
	lines := strings.Split(string(data), "\n")
	var headers []fileHeader
	inGit := false
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, "diff --git "):
			headers = append(headers, fileHeader{git: true})
			inGit = true
		case strings.HasPrefix(line, "@@"):
			inGit = false
		case strings.HasPrefix(line, "--- ") && i+1 < len(lines) && strings.HasPrefix(lines[i+1], "+++ "):
			if !inGit {
				headers = append(headers, fileHeader{
					old: headerName(line[len("--- "):]),
					new: headerName(lines[i+1][len("+++ "):]),
				})
			}
			inGit = false
			i++
		}
	}
	return headers
}

// headerName drops the optional tab-separated timestamp of a header name.
func headerName(s string) string {
	name, _, _ := strings.Cut(s, "\t")
	return strings.TrimSpace(name)
}

// stripPrefixes removes one leading path component from plain unified
// sections whose names carry the a/ and b/ prefixes, the way patch -p1
// would. Nothing changes when the headers cannot be matched to files.
func stripPrefixes(files []*gitdiff.File, headers []fileHeader) {
	if len(files) != len(headers) {
		return
	}
	for i, h := range headers {
		if h.git {
			continue
		}
		oldA := strings.HasPrefix(h.old, "a/")
		newB := strings.HasPrefix(h.new, "b/")
		if !(oldA && newB) && !(oldA && h.new == devNull) && !(h.old == devNull && newB) {
			continue
		}
		files[i].OldName = stripComponent(files[i].OldName)
		files[i].NewName = stripComponent(files[i].NewName)
	}
}

func stripComponent(name string) string {
	if name == "" || name == devNull {
		return name
	}
	_, rest, ok := strings.Cut(name, "/")
	if !ok {
		return name
	}
	return rest
}

func appendUnique(list []string, s string) []string {
	if slices.Contains(list, s) {
		return list
	}
	return append(list, s)
}

// patchError builds a PATCH_FAILED error for the given patch and file.
func patchError(msg, patchPath, file string, cause error) error {
	ctx := map[string]any{"patch": filepath.ToSlash(patchPath)}
	if file != "" {
		ctx["file"] = file
		msg = fmt.Sprintf("%s: %s", msg, file)
	}
	if cause == nil {
		return errors.NewWithContext(errors.ErrCodePatchFailed, msg, ctx)
	}
	return errors.WrapWithContext(errors.ErrCodePatchFailed, msg, cause, ctx)
}

// IsPatchError reports whether err is a patch failure raised by the build hook.
func IsPatchError(err error) bool {
	return errors.HasCode(err, errors.ErrCodePatchFailed)
}
