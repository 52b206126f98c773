// Package logging configures the process-wide structured logger from the
// validated configuration snapshot.
package logging

import (
	"log/slog"
	"os"

	"promptpulse/internal/platform/correlation"
)

// Init builds the slog logger for the given level and format (both already
// validated as enums by the config package) and installs it as the default.
func Init(level, format string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	handler = correlation.NewHandler(handler)

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
