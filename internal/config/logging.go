// The logging subsystem uses Go's stdlib log/slog package exclusively. All
// log output is directed to os.Stderr to keep stdout clean for piped
// output.
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// SetupLogging configures the global slog default logger with the given
// level and format ("json", or anything else for text). Safe to call more
// than once; each call replaces the previous configuration.
func SetupLogging(level slog.Level, format string) {
	SetupLoggingWithWriter(level, format, os.Stderr)
}

// SetupLoggingWithWriter is SetupLogging with an explicit writer, used by
// tests to capture output instead of writing to os.Stderr.
func SetupLoggingWithWriter(level slog.Level, format string, w io.Writer) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// ResolveLogLevel applies ORANG_DEBUG=1, then --verbose, then --quiet, then
// the info-level default, in that priority order.
func ResolveLogLevel(verbose, quiet bool) slog.Level {
	if os.Getenv("ORANG_DEBUG") == "1" {
		return slog.LevelDebug
	}
	if verbose {
		return slog.LevelDebug
	}
	if quiet {
		return slog.LevelError
	}
	return slog.LevelInfo
}

// ResolveLogFormat reads ORANG_LOG_FORMAT ("json" or anything else, case
// insensitive); default is "text".
func ResolveLogFormat() string {
	if strings.EqualFold(os.Getenv("ORANG_LOG_FORMAT"), "json") {
		return "json"
	}
	return "text"
}

// NewLogger returns a child logger tagged with a "component" attribute, so
// log lines from different subsystems (walk, sync, cli, ...) can be
// filtered.
func NewLogger(component string) *slog.Logger {
	return slog.Default().With("component", component)
}
