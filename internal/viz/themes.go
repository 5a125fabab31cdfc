package viz

import "github.com/charmbracelet/lipgloss"

// Theme maps canvas tags to terminal colors.
type Theme struct {
	Name      string
	Selected  lipgloss.Color
	Neighbor  lipgloss.Color
	Other     lipgloss.Color
	Highlight lipgloss.Color
	Frame     lipgloss.Color
	Grid      lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
}

// Available themes
var (
	// ThemeClassic follows the figure colors; the highlight ring is white
	// because black disappears on dark terminals.
	ThemeClassic = Theme{
		Name:      "classic",
		Selected:  lipgloss.Color("#ff0000"),
		Neighbor:  lipgloss.Color("#00c000"),
		Other:     lipgloss.Color("#3070ff"),
		Highlight: lipgloss.Color("#ffffff"),
		Frame:     lipgloss.Color("#888888"),
		Grid:      lipgloss.Color("#3a3a3a"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
	}

	ThemePaper = Theme{
		Name:      "paper",
		Selected:  lipgloss.Color("#cc0000"),
		Neighbor:  lipgloss.Color("#008000"),
		Other:     lipgloss.Color("#0000ff"),
		Highlight: lipgloss.Color("#000000"),
		Frame:     lipgloss.Color("#444444"),
		Grid:      lipgloss.Color("#bbbbbb"),
		Text:      lipgloss.Color("#000000"),
		Muted:     lipgloss.Color("#777777"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemePaper,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Color returns the color of cells carrying tag.
func (t Theme) Color(tag Tag) lipgloss.Color {
	switch tag {
	case TagSelected:
		return t.Selected
	case TagNeighbor:
		return t.Neighbor
	case TagOther:
		return t.Other
	case TagHighlight:
		return t.Highlight
	case TagFrame:
		return t.Frame
	case TagGrid:
		return t.Grid
	default:
		return t.Muted
	}
}

// Style returns a Canvas.Render style function for t.
func (t Theme) Style() func(Tag, string) string {
	styles := make(map[Tag]lipgloss.Style)
	return func(tag Tag, s string) string {
		if tag == TagNone {
			return s
		}
		st, ok := styles[tag]
		if !ok {
			st = lipgloss.NewStyle().Foreground(t.Color(tag))
			styles[tag] = st
		}
		return st.Render(s)
	}
}
