// Package scene turns a particle table into display-only circle glyphs.
//
// Every particle yields one unfilled glyph colored by its relation to the
// selected particle; one extra highlight ring marks the selected particle's
// interaction boundary. Axis bounds are fixed to the plane and never derived
// from particle positions.
package scene

import (
	"fmt"
	"image/color"

	"github.com/san-kum/cimviz/internal/particle"
)

const (
	DefaultTitle = "Cell Index Method"
	XLabel       = "X"
	YLabel       = "Y"
)

type Category int

const (
	Other Category = iota
	Neighbor
	Selected
)

func (c Category) String() string {
	switch c {
	case Selected:
		return "selected"
	case Neighbor:
		return "neighbor"
	default:
		return "other"
	}
}

var (
	ColorSelected  = color.RGBA{R: 255, A: 255}
	ColorNeighbor  = color.RGBA{G: 128, A: 255}
	ColorOther     = color.RGBA{B: 255, A: 255}
	ColorHighlight = color.RGBA{A: 255}
)

// Color returns the outline color of a category.
func (c Category) Color() color.RGBA {
	switch c {
	case Selected:
		return ColorSelected
	case Neighbor:
		return ColorNeighbor
	default:
		return ColorOther
	}
}

// Glyph is an outlined circle in plane coordinates.
type Glyph struct {
	ID       string
	X, Y     float64
	Radius   float64
	Color    color.RGBA
	Fill     bool
	Category Category
}

type Bounds struct {
	Min, Max float64
}

type Params struct {
	PlaneLength       float64
	InteractionRadius float64
	SelectedIndex     int
	Title             string
}

type Scene struct {
	Title       string
	XLabel      string
	YLabel      string
	Grid        bool
	EqualAspect bool
	X, Y        Bounds

	// Glyphs holds one glyph per particle in file order.
	Glyphs    []Glyph
	Highlight Glyph
	Selected  int
}

// Classify places the particle at index into exactly one category. Selection
// is positional and checked first, so a selected particle listing itself as a
// neighbor stays selected.
func Classify(index int, p particle.Particle, selectedIndex int, selected particle.Particle) Category {
	if index == selectedIndex {
		return Selected
	}
	if selected.HasNeighbor(p.ID) {
		return Neighbor
	}
	return Other
}

// Build derives the scene for particles. It fails before constructing any
// glyph when the selected index is out of range.
func Build(params Params, particles []particle.Particle) (*Scene, error) {
	if params.PlaneLength <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrPlaneLength, params.PlaneLength)
	}
	if params.SelectedIndex < 0 || params.SelectedIndex >= len(particles) {
		return nil, fmt.Errorf("%w: index %d, %d particles", ErrSelectedOutOfRange, params.SelectedIndex, len(particles))
	}

	title := params.Title
	if title == "" {
		title = DefaultTitle
	}

	selected := particles[params.SelectedIndex]

	s := &Scene{
		Title:       title,
		XLabel:      XLabel,
		YLabel:      YLabel,
		Grid:        true,
		EqualAspect: true,
		X:           Bounds{Min: 0, Max: params.PlaneLength},
		Y:           Bounds{Min: 0, Max: params.PlaneLength},
		Glyphs:      make([]Glyph, len(particles)),
		Selected:    params.SelectedIndex,
	}

	for i, p := range particles {
		cat := Classify(i, p, params.SelectedIndex, selected)
		s.Glyphs[i] = Glyph{
			ID:       p.ID,
			X:        p.X,
			Y:        p.Y,
			Radius:   p.Radius,
			Color:    cat.Color(),
			Category: cat,
		}
	}

	s.Highlight = Glyph{
		ID:       selected.ID,
		X:        selected.X,
		Y:        selected.Y,
		Radius:   selected.Radius + params.InteractionRadius,
		Color:    ColorHighlight,
		Category: Selected,
	}

	return s, nil
}

// All returns the particle glyphs followed by the highlight ring, in draw order.
func (s *Scene) All() []Glyph {
	out := make([]Glyph, 0, len(s.Glyphs)+1)
	out = append(out, s.Glyphs...)
	return append(out, s.Highlight)
}

// Count returns the number of particle glyphs in cat.
func (s *Scene) Count(cat Category) int {
	n := 0
	for _, g := range s.Glyphs {
		if g.Category == cat {
			n++
		}
	}
	return n
}
