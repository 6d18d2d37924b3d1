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
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvVarLogLevel is the environment variable consulted for the log level
// when no explicit level is given.
const EnvVarLogLevel = "LOG_LEVEL"

// ParseLogLevel converts a level name into a slog.Level.
// Unknown or empty values map to slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// levelFromEnv returns the level named by LOG_LEVEL.
func levelFromEnv() slog.Level {
	return ParseLogLevel(os.Getenv(EnvVarLogLevel))
}

// newHandler builds the JSON handler shared by all constructors.
func newHandler(w io.Writer, lvl slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: lvl <= slog.LevelDebug,
		Level:     lvl,
	})
}

// NewStructuredLoggerWithWriter creates a JSON logger writing to w.
// Every record carries module and version attributes.
func NewStructuredLoggerWithWriter(w io.Writer, module, version, level string) *slog.Logger {
	lvl := ParseLogLevel(level)
	if strings.TrimSpace(level) == "" {
		lvl = levelFromEnv()
	}
	return slog.New(newHandler(w, lvl)).With(
		slog.String("module", module),
		slog.String("version", version),
	)
}

// NewStructuredLogger creates a JSON logger writing to stderr.
// An empty level falls back to LOG_LEVEL.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return NewStructuredLoggerWithWriter(os.Stderr, module, version, level)
}

// SetDefaultStructuredLogger installs a stderr JSON logger as the slog default,
// taking its level from LOG_LEVEL.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, "")
}

// SetDefaultStructuredLoggerWithLevel installs a stderr JSON logger with an
// explicit level as the slog default.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}
