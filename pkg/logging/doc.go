// Package logging provides structured logging utilities for the scopepkg tool.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so every command logs the same way: JSON records on stderr, a level taken
// from the --log-level flag or the LOG_LEVEL environment variable, and
// module/version attributes on every record. Debug level adds source
// locations.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Non-fatal recipe warnings, such as an unknown compiler
//   - ERROR: Failures that abort the recipe
//
// # Usage
//
// Setting the default logger:
//
//	logging.SetDefaultStructuredLoggerWithLevel("scopepkg", version, "debug")
//	slog.Info("exporting sources", "dest", dest)
//
// Creating a logger for tests:
//
//	var buf bytes.Buffer
//	logger := logging.NewStructuredLoggerWithWriter(&buf, "scopepkg", "test", "warn")
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "WARN",
//	    "msg": "Assuming the compiler supports c++11 by default",
//	    "module": "scopepkg",
//	    "version": "v1.0.0",
//	    "compiler": "intel-cc"
//	}
package logging
