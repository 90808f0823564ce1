package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level string
}

// NewLogger creates a new slog.Logger writing JSON console output to w.
// The level is parsed from the config; defaults to INFO if invalid or empty.
// It is a shorthand for a Registry holding a single JSON console provider.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	return slog.New(NewJSONConsoleProvider().NewHandler(w, config))
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
