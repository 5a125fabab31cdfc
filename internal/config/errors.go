package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingLine indicates an input file shorter than a required line position.
	ErrMissingLine = errors.New("config: missing line")

	// ErrMalformedValue indicates a line that does not parse as the expected type.
	ErrMalformedValue = errors.New("config: malformed value")

	// ErrRadiusCount indicates a generator input whose radii do not match the particle count.
	ErrRadiusCount = errors.New("config: particle count does not match the amount of radii provided")

	// ErrInvalid indicates a configuration that failed validation.
	ErrInvalid = errors.New("config: invalid configuration")
)

// LineError wraps a legacy input error with the 0-based line it refers to.
type LineError struct {
	Line    int
	Field   string
	Wrapped error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.Field, e.Wrapped)
}

func (e *LineError) Unwrap() error {
	return e.Wrapped
}
