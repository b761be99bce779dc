package rostercore

import "github.com/flightops/rostercore/internal/infrastructure/config"

// Config is the process-level configuration surface (spec.md §6):
// solver choice, log verbosity, data directory and solve time limit,
// loaded from the environment with silent-default-on-invalid-value
// behavior.
type Config = config.Config

// LoadConfig reads Config from the environment.
func LoadConfig() *Config {
	return config.Load()
}
