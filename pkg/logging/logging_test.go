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

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.input))
		})
	}
}

func TestNewStructuredLoggerWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLoggerWithWriter(&buf, "scopepkg", "v1.2.3", "info")

	logger.Debug("hidden")
	logger.Warn("Assuming the compiler supports c++11 by default", "compiler", "intel-cc")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "debug record should be filtered at info level")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "scopepkg", rec["module"])
	assert.Equal(t, "v1.2.3", rec["version"])
	assert.Equal(t, "intel-cc", rec["compiler"])
	assert.NotContains(t, rec, "source")
}

func TestNewStructuredLoggerDebugAddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLoggerWithWriter(&buf, "scopepkg", "dev", "debug")
	logger.Debug("copying file")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Contains(t, rec, "source")
}

func TestNewStructuredLoggerFallsBackToEnv(t *testing.T) {
	t.Setenv(EnvVarLogLevel, "error")

	var buf bytes.Buffer
	logger := NewStructuredLoggerWithWriter(&buf, "scopepkg", "dev", "")
	logger.Warn("dropped")
	assert.Empty(t, buf.String())

	logger.Error("kept")
	assert.Contains(t, buf.String(), "kept")
}
