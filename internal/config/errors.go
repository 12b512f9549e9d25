package config

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// Note: validation failures wrap ErrInvalidConfig with the offending
// field; loader failures (file read, YAML parse, env merge) wrap
// ErrLoadConfig with the underlying cause.
