package core

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the single error kind raised for rejected sample rates,
// buffer sizes and node parameters. Match it with errors.Is.
var ErrInvalidConfig = errors.New("invalid config")

// InvalidConfigError carries the human-readable reason a value was rejected
// and, optionally, the underlying error.
type InvalidConfigError struct {
	Reason string
	Err    error
}

// InvalidConfigf builds an *InvalidConfigError from a format string.
func InvalidConfigf(format string, args ...any) error {
	return &InvalidConfigError{Reason: fmt.Sprintf(format, args...)}
}

func (e *InvalidConfigError) Error() string {
	msg := ErrInvalidConfig.Error() + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is ErrInvalidConfig.
func (e *InvalidConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Unwrap returns the underlying error, if any.
func (e *InvalidConfigError) Unwrap() error {
	return e.Err
}
