package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup creates and sets the package-level default slog logger. Diagnostics
// always go to stderr; when queue rows are being written to stdout the
// handler switches to JSON so the two streams stay machine-separable.
func Setup(level string, queueOnStdout bool) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var handler slog.Handler
	if queueOnStdout {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// parseLevel converts "debug", "info", "warn", "error" to a slog.Level.
// Unknown strings default to info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
