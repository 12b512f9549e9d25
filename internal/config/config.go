// Package config defines process configuration and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error kinds.
package config

import (
	"context"
	"runtime"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Provider names the event provider integration to load matches
	// with, e.g. "jsonfile".
	Provider string `koanf:"provider"`

	// HomeTeamID names the team attacking in the fixed orientation of
	// the output. Empty means take it from the feed metadata.
	HomeTeamID string `koanf:"home_team_id"`

	// Output is the destination path for the action table; "-" writes
	// to stdout.
	Output string `koanf:"output"`

	// Format selects the output encoding: csv or json.
	Format string `koanf:"format"`

	// MinDribbleLength and MaxDribbleLength bound, in meters, the gap
	// between consecutive actions that yields a synthetic dribble.
	MinDribbleLength float64 `koanf:"min_dribble_length"`
	MaxDribbleLength float64 `koanf:"max_dribble_length"`

	// MaxDribbleDurationSec caps the seconds between consecutive
	// actions that still yield a synthetic dribble.
	MaxDribbleDurationSec float64 `koanf:"max_dribble_duration_sec"`

	// BatchWorkers sets how many matches convert concurrently in
	// batch mode.
	BatchWorkers int `koanf:"batch_workers"`
}

// New creates a Config with defaults. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use
// and is currently unused.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:              "info",
		Provider:              "jsonfile",
		HomeTeamID:            "",
		Output:                "-",
		Format:                "csv",
		MinDribbleLength:      3,
		MaxDribbleLength:      60,
		MaxDribbleDurationSec: 10,
		BatchWorkers:          runtime.NumCPU(),
	}
	return c
}
