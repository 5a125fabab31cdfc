package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/cimviz/internal/scene"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	gridDivisions = 5
	// rows reserved for title, axis labels, legend and help
	chromeRows = 6
	// columns reserved for the Y axis labels
	chromeCols = 8
)

var categoryTags = map[scene.Category]Tag{
	scene.Selected: TagSelected,
	scene.Neighbor: TagNeighbor,
	scene.Other:    TagOther,
}

// Frame describes where the plane landed on a canvas, in sub-pixels.
type Frame struct {
	Rect  Rect
	Scale float64
}

// ToDot maps plane coordinates to sub-pixel coordinates; y grows downwards.
func (f Frame) ToDot(s *scene.Scene, x, y float64) (float64, float64) {
	return float64(f.Rect.MinX) + (x-s.X.Min)*f.Scale, float64(f.Rect.MinY) + (s.Y.Max-y)*f.Scale
}

// Rasterize draws s on c inside the largest square that fits: grid, frame,
// particle glyphs in order and the highlight ring last. Glyphs are clipped to
// the frame.
func Rasterize(s *scene.Scene, c *Canvas) Frame {
	side := c.DotWidth()
	if h := c.DotHeight(); h < side {
		side = h
	}
	if side < 2 {
		side = 2
	}

	rect := Rect{MinX: 0, MinY: 0, MaxX: side - 1, MaxY: side - 1}
	span := math.Max(s.X.Max-s.X.Min, s.Y.Max-s.Y.Min)
	f := Frame{Rect: rect, Scale: float64(side-1) / span}

	if s.Grid {
		for i := 1; i < gridDivisions; i++ {
			p := int(math.Round(float64(side-1) * float64(i) / gridDivisions))
			for d := 0; d < side; d += 3 {
				c.SetTagged(p, d, TagGrid)
				c.SetTagged(d, p, TagGrid)
			}
		}
	}

	c.DrawLine(rect.MinX, rect.MinY, rect.MaxX, rect.MinY, TagFrame)
	c.DrawLine(rect.MaxX, rect.MinY, rect.MaxX, rect.MaxY, TagFrame)
	c.DrawLine(rect.MaxX, rect.MaxY, rect.MinX, rect.MaxY, TagFrame)
	c.DrawLine(rect.MinX, rect.MaxY, rect.MinX, rect.MinY, TagFrame)

	for _, g := range s.Glyphs {
		cx, cy := f.ToDot(s, g.X, g.Y)
		c.DrawCircle(cx, cy, g.Radius*f.Scale, categoryTags[g.Category], &rect)
	}

	h := s.Highlight
	cx, cy := f.ToDot(s, h.X, h.Y)
	c.DrawCircle(cx, cy, h.Radius*f.Scale, TagHighlight, &rect)

	return f
}

// Viewer is a Bubble Tea model that renders a scene until closed.
type Viewer struct {
	scene  *scene.Scene
	theme  Theme
	width  int
	height int
	canvas *Canvas
}

func NewViewer(s *scene.Scene, theme Theme) Viewer {
	v := Viewer{scene: s, theme: theme}
	v.resize(defaultWidth, defaultHeight)
	return v
}

func (v *Viewer) resize(w, h int) {
	v.width, v.height = w, h
	cols := w - chromeCols
	rows := h - chromeRows
	if cols < 4 {
		cols = 4
	}
	if rows < 2 {
		rows = 2
	}
	// the drawing is square in dots: 2 dots per column, 4 per row
	if cols > rows*2 {
		cols = rows * 2
	}
	v.canvas = NewCanvas(cols, rows)
	Rasterize(v.scene, v.canvas)
}

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		}
	case tea.WindowSizeMsg:
		v.resize(msg.Width, msg.Height)
	}
	return v, nil
}

func (v Viewer) View() string {
	text := lipgloss.NewStyle().Foreground(v.theme.Text)
	muted := lipgloss.NewStyle().Foreground(v.theme.Muted)

	lines := strings.Split(strings.TrimSuffix(v.canvas.Render(v.theme.Style()), "\n"), "\n")
	yMax := fmt.Sprintf("%6.4g ", v.scene.Y.Max)
	yMin := fmt.Sprintf("%6.4g ", v.scene.Y.Min)
	pad := strings.Repeat(" ", len(yMax))

	var b strings.Builder
	b.WriteString(pad + text.Bold(true).Render(v.scene.Title) + "\n")
	for i, line := range lines {
		label := pad
		switch i {
		case 0:
			label = yMax
		case len(lines) / 2:
			label = fmt.Sprintf("%6s ", v.scene.YLabel)
		case len(lines) - 1:
			label = yMin
		}
		b.WriteString(muted.Render(label) + line + "\n")
	}

	xMin := fmt.Sprintf("%-6.4g", v.scene.X.Min)
	xMax := fmt.Sprintf("%6.4g", v.scene.X.Max)
	gap := v.canvas.Width - len(xMin) - len(xMax) - len(v.scene.XLabel)
	if gap < 2 {
		gap = 2
	}
	left := gap / 2
	b.WriteString(pad + muted.Render(xMin+strings.Repeat(" ", left)+v.scene.XLabel+strings.Repeat(" ", gap-left)+xMax) + "\n")

	b.WriteString(pad + v.legend() + "\n")
	b.WriteString(pad + muted.Render("q: close"))
	return b.String()
}

func (v Viewer) legend() string {
	entry := func(tag Tag, name string, n int) string {
		return lipgloss.NewStyle().Foreground(v.theme.Color(tag)).Render("○") + fmt.Sprintf(" %s (%d)", name, n)
	}
	return strings.Join([]string{
		entry(TagSelected, "selected", v.scene.Count(scene.Selected)),
		entry(TagNeighbor, "neighbor", v.scene.Count(scene.Neighbor)),
		entry(TagOther, "other", v.scene.Count(scene.Other)),
		entry(TagHighlight, "interaction radius", 1),
	}, "   ")
}

// Run shows s in the terminal and blocks until the viewer is closed.
func Run(s *scene.Scene, theme Theme) error {
	_, err := tea.NewProgram(NewViewer(s, theme), tea.WithAltScreen()).Run()
	return err
}
