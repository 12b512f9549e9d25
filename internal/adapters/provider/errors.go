package provider

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrMissingIntegration = errors.New("provider integration is not available")
)
