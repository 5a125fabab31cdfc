// Package particle defines the particle record shared by the generator,
// the particle table codec and the scene builder.
package particle

import "math"

// Particle is one row of a particle table. Neighbors holds identifiers taken
// verbatim from the table; it is empty for freshly generated particles.
type Particle struct {
	ID        string
	Radius    float64
	X         float64
	Y         float64
	Neighbors []string
}

// Distance returns the center-to-center distance between p and o.
func (p Particle) Distance(o Particle) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// PeriodicDistance returns the center-to-center distance under periodic
// boundaries on a square plane of side length.
func (p Particle) PeriodicDistance(o Particle, length float64) float64 {
	dx := math.Abs(p.X - o.X)
	dy := math.Abs(p.Y - o.Y)
	if dx > length/2 {
		dx = length - dx
	}
	if dy > length/2 {
		dy = length - dy
	}
	return math.Hypot(dx, dy)
}

// BorderDistance subtracts both radii from a center distance.
func (p Particle) BorderDistance(o Particle, centerDistance float64) float64 {
	return centerDistance - p.Radius - o.Radius
}

// HasNeighbor reports whether id appears in p's neighbor list.
func (p Particle) HasNeighbor(id string) bool {
	for _, n := range p.Neighbors {
		if n == id {
			return true
		}
	}
	return false
}

// MaxRadius returns the largest radius in ps, or 0 for an empty slice.
func MaxRadius(ps []Particle) float64 {
	max := 0.0
	for _, p := range ps {
		if p.Radius > max {
			max = p.Radius
		}
	}
	return max
}
