package scene

import "errors"

var (
	// ErrSelectedOutOfRange indicates a selected index that addresses no particle.
	ErrSelectedOutOfRange = errors.New("scene: selected particle index out of range")

	// ErrPlaneLength indicates a non-positive plane side length.
	ErrPlaneLength = errors.New("scene: plane length must be positive")
)
