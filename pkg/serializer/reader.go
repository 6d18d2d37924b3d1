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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the format from a file extension:
// .json is JSON, .yaml and .yml are YAML, .table and .txt are table.
// Unknown extensions default to YAML, the format of settings profiles.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lowerPath, ".table"), strings.HasSuffix(lowerPath, ".txt"):
		return FormatTable
	default:
		slog.Debug("unknown file extension, defaulting to YAML", "filePath", filePath)
		return FormatYAML
	}
}

// Reader decodes JSON or YAML documents. Table output cannot be read back.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a Reader over input. If input implements io.Closer it
// is closed by Reader.Close.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// NewFileReader opens filePath for decoding. The caller must Close it.
func NewFileReader(format Format, filePath string) (*Reader, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	r, err := NewReader(format, file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return r, nil
}

// Deserialize decodes the next document into v, which must be a pointer.
// YAML documents with fields unknown to v are rejected.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}
	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		decoder := json.NewDecoder(r.input)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		decoder := yaml.NewDecoder(r.input)
		decoder.KnownFields(true)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases the underlying source. Safe to call multiple times.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// FromFile loads a document of type T from a local path or an http(s) URL.
// The format is taken from the path extension.
//
//	profile, err := FromFile[recipe.Settings](ctx, "profiles/gcc13.yaml")
func FromFile[T any](ctx context.Context, location string, opts ...HttpReaderOption) (*T, error) {
	var (
		reader *Reader
		err    error
		format Format
	)

	if isRemote(location) {
		u, parseErr := url.Parse(location)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid URL %q: %w", location, parseErr)
		}
		format = FormatFromPath(path.Base(u.Path))
		data, readErr := NewHttpReader(opts...).ReadWithContext(ctx, location)
		if readErr != nil {
			return nil, readErr
		}
		reader, err = NewReader(format, bytes.NewReader(data))
	} else {
		format = FormatFromPath(location)
		reader, err = NewFileReader(format, location)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", location, err)
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			slog.Warn("failed to close reader", "error", closeErr)
		}
	}()

	slog.Debug("loading document", slog.String("location", location), slog.String("format", string(format)))

	var doc T
	if err := reader.Deserialize(&doc); err != nil {
		return nil, fmt.Errorf("failed to deserialize %q: %w", location, err)
	}
	return &doc, nil
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
