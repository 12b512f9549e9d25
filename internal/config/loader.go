package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if SPADL_CONFIG is set
//  3. env (prefix SPADL_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("SPADL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: SPADL_PROVIDER, SPADL_MIN_DRIBBLE_LENGTH, ...
	// Map env keys like SPADL_MIN_DRIBBLE_LENGTH -> min_dribble_length
	// (flat keys). Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("SPADL_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "spadl_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Provider == "" {
		return fmt.Errorf("%w: provider must not be empty", ErrInvalidConfig)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output must not be empty", ErrInvalidConfig)
	}
	if c.Format != "csv" && c.Format != "json" {
		return fmt.Errorf("%w: format must be csv or json, got %q", ErrInvalidConfig, c.Format)
	}
	if c.MinDribbleLength <= 0 || c.MaxDribbleLength <= c.MinDribbleLength {
		return fmt.Errorf("%w: dribble lengths must satisfy 0 < min < max", ErrInvalidConfig)
	}
	if c.MaxDribbleDurationSec <= 0 {
		return fmt.Errorf("%w: max_dribble_duration_sec must be positive", ErrInvalidConfig)
	}
	if c.BatchWorkers < 1 {
		return fmt.Errorf("%w: batch_workers must be at least 1", ErrInvalidConfig)
	}
	return nil
}
