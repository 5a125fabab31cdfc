package cim

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/cimviz/internal/particle"
)

// maxCells caps the optimum grid side; any smaller grid still satisfies the
// cell size constraint.
const maxCells = 1024

// Neighbors holds, for every particle index, the sorted indices of its neighbors.
type Neighbors [][]int

// Option configures a Method.
type Option func(*Method)

// WithCellCount fixes the grid side M. Zero keeps the optimum.
func WithCellCount(m int) Option {
	return func(c *Method) {
		c.cells = m
	}
}

// WithPeriodic enables periodic boundary conditions.
func WithPeriodic(periodic bool) Option {
	return func(c *Method) {
		c.periodic = periodic
	}
}

type Method struct {
	plane    *Plane
	rc       float64
	cells    int
	periodic bool
}

// New prepares a cell index method run over plane. Without WithCellCount
// the optimum cell count is used.
func New(plane *Plane, interactionRadius float64, opts ...Option) (*Method, error) {
	if plane == nil || len(plane.Particles) == 0 {
		return nil, ErrEmptyPlane
	}
	if interactionRadius < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInteractionRadius, interactionRadius)
	}

	m := &Method{plane: plane, rc: interactionRadius}
	for _, opt := range opts {
		opt(m)
	}

	reach := interactionRadius + 2*particle.MaxRadius(plane.Particles)
	if m.cells <= 0 {
		m.cells = OptimumCellCount(plane.Length, reach)
	} else if plane.Length/float64(m.cells) < reach {
		return nil, fmt.Errorf("%w: L/M = %g < %g", ErrCellTooSmall, plane.Length/float64(m.cells), reach)
	}

	return m, nil
}

// OptimumCellCount returns the largest M with length/M >= reach, at least 1
// and at most maxCells.
func OptimumCellCount(length, reach float64) int {
	if reach <= 0 {
		return 1
	}
	m := math.Floor(length / reach)
	if m < 1 {
		return 1
	}
	if m > maxCells {
		return maxCells
	}
	return int(m)
}

func (m *Method) CellCount() int { return m.cells }

func (m *Method) Periodic() bool { return m.periodic }

func (m *Method) InteractionRadius() float64 { return m.rc }

// Execute computes the neighbor relation. The context is checked once per
// grid row.
func (m *Method) Execute(ctx context.Context) (Neighbors, error) {
	ps := m.plane.Particles
	side := m.plane.Length / float64(m.cells)

	grid := make([][]int, m.cells*m.cells)
	for i, p := range ps {
		row, col := m.cellOf(p.Y, side), m.cellOf(p.X, side)
		grid[row*m.cells+col] = append(grid[row*m.cells+col], i)
	}

	sets := make([]map[int]struct{}, len(ps))
	for i := range sets {
		sets[i] = make(map[int]struct{})
	}

	stencil := [5][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}}

	for row := 0; row < m.cells; row++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for col := 0; col < m.cells; col++ {
			home := grid[row*m.cells+col]
			if len(home) == 0 {
				continue
			}

			for _, off := range stencil {
				r, c, ok := m.wrap(row+off[0], col+off[1])
				if !ok {
					continue
				}
				other := grid[r*m.cells+c]
				same := off == [2]int{0, 0}

				for ai, a := range home {
					start := 0
					if same {
						start = ai + 1
					}
					for _, b := range other[start:] {
						if a == b {
							continue
						}
						if m.touching(ps[a], ps[b]) {
							sets[a][b] = struct{}{}
							sets[b][a] = struct{}{}
						}
					}
				}
			}
		}
	}

	return toNeighbors(sets), nil
}

// BruteForce computes the same relation as Execute by checking every pair.
func BruteForce(plane *Plane, interactionRadius float64, periodic bool) Neighbors {
	m := &Method{plane: plane, rc: interactionRadius, cells: 1, periodic: periodic}
	ps := plane.Particles

	sets := make([]map[int]struct{}, len(ps))
	for i := range sets {
		sets[i] = make(map[int]struct{})
	}
	for a := range ps {
		for b := a + 1; b < len(ps); b++ {
			if m.touching(ps[a], ps[b]) {
				sets[a][b] = struct{}{}
				sets[b][a] = struct{}{}
			}
		}
	}
	return toNeighbors(sets)
}

func (m *Method) cellOf(v, side float64) int {
	idx := int(v / side)
	if idx >= m.cells {
		idx = m.cells - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func (m *Method) wrap(row, col int) (int, int, bool) {
	if m.periodic {
		return (row + m.cells) % m.cells, (col + m.cells) % m.cells, true
	}
	if row < 0 || col < 0 || row >= m.cells || col >= m.cells {
		return 0, 0, false
	}
	return row, col, true
}

func (m *Method) touching(a, b particle.Particle) bool {
	var d float64
	if m.periodic {
		d = a.PeriodicDistance(b, m.plane.Length)
	} else {
		d = a.Distance(b)
	}
	return a.BorderDistance(b, d) <= m.rc
}

func toNeighbors(sets []map[int]struct{}) Neighbors {
	out := make(Neighbors, len(sets))
	for i, set := range sets {
		idx := make([]int, 0, len(set))
		for j := range set {
			idx = append(idx, j)
		}
		sort.Ints(idx)
		out[i] = idx
	}
	return out
}

// Apply copies the neighbor identifiers into each particle's Neighbors field.
func (n Neighbors) Apply(ps []particle.Particle) []particle.Particle {
	out := make([]particle.Particle, len(ps))
	for i, p := range ps {
		p.Neighbors = make([]string, 0, len(n[i]))
		for _, j := range n[i] {
			p.Neighbors = append(p.Neighbors, ps[j].ID)
		}
		out[i] = p
	}
	return out
}
