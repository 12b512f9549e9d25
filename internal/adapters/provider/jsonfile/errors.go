package jsonfile

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidFeed = errors.New("invalid feed")
)
