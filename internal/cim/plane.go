package cim

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/cimviz/internal/particle"
)

type Plane struct {
	Length    float64
	Particles []particle.Particle
}

// NewPlane validates that length is positive and every particle center lies
// within [0, length] on both axes.
func NewPlane(length float64, particles []particle.Particle) (*Plane, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrPlaneLength, length)
	}
	if len(particles) == 0 {
		return nil, ErrEmptyPlane
	}
	for _, p := range particles {
		if p.X < 0 || p.Y < 0 || p.X > length || p.Y > length {
			return nil, fmt.Errorf("%w: %s at (%g, %g), length %g", ErrOutOfPlane, p.ID, p.X, p.Y, length)
		}
	}

	ps := make([]particle.Particle, len(particles))
	copy(ps, particles)
	return &Plane{Length: length, Particles: ps}, nil
}

// RandomPlane places one particle per radius uniformly in [0, length)^2.
// Identifiers are p_0, p_1, ... in radius order.
func RandomPlane(length float64, radii []float64, seed int64) (*Plane, error) {
	rng := rand.New(rand.NewSource(seed))

	particles := make([]particle.Particle, len(radii))
	for i, r := range radii {
		particles[i] = particle.Particle{
			ID:     fmt.Sprintf("p_%d", i),
			Radius: r,
			X:      rng.Float64() * length,
			Y:      rng.Float64() * length,
		}
	}

	return NewPlane(length, particles)
}
