// Package util provides shared helpers for the example programs: logging,
// caller-side retries, and request pacing. The hood library itself never
// retries or rate-limits; these exist for the callers that drive it.
package util

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a structured logger at the given level with the given
// output format ("json" or "text"). Unrecognised values fall back to info
// level and JSON output.
func NewLogger(level, format string) *slog.Logger {
	var slevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slevel = slog.LevelDebug
	case "info":
		slevel = slog.LevelInfo
	case "warn":
		slevel = slog.LevelWarn
	case "error":
		slevel = slog.LevelError
	default:
		slevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: slevel}

	var handler slog.Handler
	if strings.ToLower(format) == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

// SetDefault configures the provided logger as the default slog logger.
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}
