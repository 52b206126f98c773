package config

import (
	"log/slog"

	"github.com/joho/godotenv"
)

// Load reads the optional .env file, validates the process environment
// against the variable table, and derives the snapshot. The returned error,
// when non-nil, is a ValidationErrors listing every violation. Load runs
// once during process initialization; the snapshot is never recomputed.
func Load() (Snapshot, error) {
	// godotenv only fills gaps: variables already set in the process
	// environment keep their values.
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using process environment only")
	}

	parsed, err := Validate(Table(), OSSource{})
	if err != nil {
		return Snapshot{}, err
	}
	return Derive(parsed), nil
}
