package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Tag marks what last drew into a cell; it selects the cell's color.
type Tag uint8

const (
	TagNone Tag = iota
	TagGrid
	TagFrame
	TagOther
	TagNeighbor
	TagSelected
	TagHighlight
)

type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Tags          [][]Tag
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Tags:   make([][]Tag, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Tags[i] = make([]Tag, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
	return c
}

// DotWidth and DotHeight give the canvas size in sub-pixels.
func (c *Canvas) DotWidth() int  { return c.Width * 2 }
func (c *Canvas) DotHeight() int { return c.Height * 4 }

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	c.SetTagged(x, y, TagNone)
}

// SetTagged sets a pixel and, unless tag is TagNone, retags its cell.
func (c *Canvas) SetTagged(x, y int, tag Tag) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if tag != TagNone {
		c.Tags[row][col] = tag
	}
}

// IsSet reports whether the sub-pixel at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	mask := ^rune(pixelMap[y%4][x%2])
	c.Grid[row][col] &= mask
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Tags[i][j] = TagNone
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, tag Tag) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.SetTagged(x0, y0, tag)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle outlines a circle of radius r sub-pixels centered at (cx, cy).
// Points outside clip are dropped; a nil clip keeps everything on the canvas.
func (c *Canvas) DrawCircle(cx, cy, r float64, tag Tag, clip *Rect) {
	plot := func(x, y int) {
		if clip != nil && !clip.Contains(x, y) {
			return
		}
		c.SetTagged(x, y, tag)
	}

	if r < 0.5 {
		plot(int(math.Round(cx)), int(math.Round(cy)))
		return
	}

	steps := int(math.Ceil(2 * math.Pi * r * 2))
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		plot(int(math.Round(cx+r*math.Cos(a))), int(math.Round(cy+r*math.Sin(a))))
	}
}

// Rect is an inclusive sub-pixel rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render joins the rows, coloring each run of equally tagged cells with style.
func (c *Canvas) Render(style func(Tag, string) string) string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Tags[i][j] == c.Tags[i][start] {
				continue
			}
			b.WriteString(style(c.Tags[i][start], string(row[start:j])))
			start = j
		}
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
