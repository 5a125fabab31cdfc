// Package export lays a scene out as a plot figure and encodes it to an image.
//
// Figures carry the scene title, axis labels, a grid and fixed [0, L] axes.
// The data area is cropped to a square so that one plane unit has the same
// length on both axes and glyphs stay circular.
package export

import (
	"image"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/cimviz/internal/scene"
)

const (
	lineWidth = 1
	// straight segments per ring
	ringSegments = 128
)

// circles draws unfilled glyphs in data coordinates, clipped to the data
// area. It does not implement plot.DataRanger so it never widens the fixed
// axes.
type circles []scene.Glyph

func (c circles) Plot(dc draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&dc)
	for _, g := range c {
		cx, cy := trX(g.X), trY(g.Y)
		r := trX(g.X+g.Radius) - cx
		if r <= 0 {
			continue
		}

		ring := make([]vg.Point, ringSegments+1)
		for i := range ring {
			a := 2 * math.Pi * float64(i) / ringSegments
			ring[i] = vg.Point{X: cx + r*vg.Length(math.Cos(a)), Y: cy + r*vg.Length(math.Sin(a))}
		}

		if g.Fill {
			dc.FillPolygon(g.Color, dc.ClipPolygonXY(ring))
		}
		dc.StrokeLines(draw.LineStyle{Color: g.Color, Width: vg.Points(lineWidth)}, dc.ClipLinesXY(ring)...)
	}
}

// NewPlot builds the figure for s: particle glyphs first, highlight ring last.
func NewPlot(s *scene.Scene) *plot.Plot {
	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = s.YLabel

	p.X.Min, p.X.Max = s.X.Min, s.X.Max
	p.Y.Min, p.Y.Max = s.Y.Min, s.Y.Max

	if s.Grid {
		p.Add(plotter.NewGrid())
	}
	p.Add(circles(s.Glyphs), circles{s.Highlight})

	return p
}

// Draw renders p into dc. With equal set, dc is first cropped so the data
// area is square.
func Draw(p *plot.Plot, dc draw.Canvas, equal bool) {
	p.Draw(figureCanvas(p, dc, equal))
}

func figureCanvas(p *plot.Plot, dc draw.Canvas, equal bool) draw.Canvas {
	if equal {
		return squareDataArea(p, dc)
	}
	return dc
}

func squareDataArea(p *plot.Plot, dc draw.Canvas) draw.Canvas {
	da := p.DataCanvas(dc)
	w := da.Max.X - da.Min.X
	h := da.Max.Y - da.Min.Y

	switch {
	case w > h:
		d := (w - h) / 2
		return draw.Crop(dc, d, -d, 0, 0)
	case h > w:
		d := (h - w) / 2
		return draw.Crop(dc, 0, 0, d, -d)
	}
	return dc
}

// Image rasterizes s on a square canvas of side inches at dpi.
func Image(s *scene.Scene, side vg.Length, dpi int) image.Image {
	c := vgimg.NewWith(vgimg.UseWH(side, side), vgimg.UseDPI(dpi))
	Draw(NewPlot(s), draw.New(c), s.EqualAspect)
	return c.Image()
}
