package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Setup creates and configures a new logger instance. level is the
// config surface's logLevel value (spec.md §6: DEBUG..CRITICAL); an
// unrecognized name defaults to INFO. slog has no CRITICAL level, so
// it maps onto LevelError alongside ERROR.
func Setup(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		l = slog.LevelDebug
	case "INFO":
		l = slog.LevelInfo
	case "WARN", "WARNING":
		l = slog.LevelWarn
	case "ERROR", "CRITICAL":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: l,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// Logger creates a default logger with info level.
func Logger() *slog.Logger {
	return Setup("info")
}
