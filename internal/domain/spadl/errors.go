package spadl

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrSchema = errors.New("action table violates schema")
)
