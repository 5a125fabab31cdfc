package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrShortRow indicates a particle row with fewer than the required columns.
	ErrShortRow = errors.New("storage: particle row has fewer than 5 columns")

	// ErrBadNumber indicates a radius or coordinate that is not a finite number.
	ErrBadNumber = errors.New("storage: malformed numeric field")

	// ErrNeighborCount indicates a neighbor table that does not match the particles.
	ErrNeighborCount = errors.New("storage: neighbor table length differs from particle count")
)

// ParseError wraps a particle table error with its position.
type ParseError struct {
	Line    int
	Field   string
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Wrapped)
	}
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Field, e.Wrapped)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}
