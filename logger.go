package rostercore

import (
	"log/slog"

	"github.com/flightops/rostercore/internal/infrastructure/logger"
)

// SetupLogger configures the default slog logger at the given level
// name (spec.md §6: DEBUG..CRITICAL; unrecognized defaults to INFO).
func SetupLogger(level string) *slog.Logger {
	return logger.Setup(level)
}
