package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if c.Grid[0][0] != blank+0x1 {
		t.Errorf("expected dot 1, got %U", c.Grid[0][0])
	}
	c.SetTagged(1, 3, TagSelected)
	if c.Grid[0][0] != blank+0x1+0x80 {
		t.Errorf("expected dots 1 and 8, got %U", c.Grid[0][0])
	}
	if c.Tags[0][0] != TagSelected {
		t.Errorf("expected selected tag, got %d", c.Tags[0][0])
	}
	if !c.IsSet(1, 3) || c.IsSet(1, 2) {
		t.Error("IsSet disagrees with Set")
	}

	c.Unset(0, 0)
	c.Unset(1, 3)
	if c.Grid[0][0] != blank {
		t.Errorf("expected blank, got %U", c.Grid[0][0])
	}

	// out of range writes are ignored
	c.Set(-1, 0)
	c.Set(100, 100)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetTagged(1, 1, TagOther)
	c.Clear()
	if c.Grid[0][0] != blank || c.Tags[0][0] != TagNone {
		t.Error("Clear left state behind")
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(5, 1)
	c.DrawLine(0, 0, 9, 0, TagFrame)
	for x := 0; x < 10; x++ {
		if !c.IsSet(x, 0) {
			t.Errorf("dot %d not set", x)
		}
	}
	if c.Tags[0][4] != TagFrame {
		t.Error("line did not tag its cells")
	}
}

func TestDrawCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawCircle(20, 20, 8, TagOther, nil)

	for _, p := range [][2]int{{28, 20}, {12, 20}, {20, 28}, {20, 12}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("expected dot at %v", p)
		}
	}
	if c.IsSet(20, 20) {
		t.Error("circle should be unfilled")
	}

	clip := &Rect{MinX: 0, MinY: 0, MaxX: 20, MaxY: 39}
	c.Clear()
	c.DrawCircle(20, 20, 8, TagOther, clip)
	if c.IsSet(28, 20) {
		t.Error("dot outside clip was drawn")
	}
	if !c.IsSet(12, 20) {
		t.Error("dot inside clip missing")
	}

	c.Clear()
	c.DrawCircle(5, 5, 0.1, TagOther, nil)
	if !c.IsSet(5, 5) {
		t.Error("tiny circle should draw a single dot")
	}
}

func TestRender(t *testing.T) {
	c := NewCanvas(3, 1)
	c.SetTagged(0, 0, TagSelected)
	c.SetTagged(2, 0, TagSelected)

	var runs []string
	out := c.Render(func(tag Tag, s string) string {
		runs = append(runs, s)
		return s
	})

	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d: %q", len(runs), runs)
	}
	if out != c.String() {
		t.Errorf("identity style changed output: %q vs %q", out, c.String())
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("expected trailing newline")
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("paper").Name != "paper" {
		t.Error("expected paper theme")
	}
	if GetTheme("nope").Name != ThemeClassic.Name {
		t.Error("unknown theme should fall back to classic")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
	if ThemeClassic.Color(TagHighlight) != ThemeClassic.Highlight {
		t.Error("highlight tag should use highlight color")
	}
}
