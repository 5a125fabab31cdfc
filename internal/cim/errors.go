package cim

import "errors"

var (
	// ErrEmptyPlane indicates a plane without particles.
	ErrEmptyPlane = errors.New("cim: plane has no particles")

	// ErrPlaneLength indicates a non-positive plane side length.
	ErrPlaneLength = errors.New("cim: plane length must be positive")

	// ErrOutOfPlane indicates a particle center outside [0, L].
	ErrOutOfPlane = errors.New("cim: particle outside plane")

	// ErrCellTooSmall indicates a cell count whose cells are narrower than rc + 2*rmax.
	ErrCellTooSmall = errors.New("cim: cell side smaller than interaction range")

	// ErrInteractionRadius indicates a negative interaction radius.
	ErrInteractionRadius = errors.New("cim: interaction radius must be non-negative")
)
