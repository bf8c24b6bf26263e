package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bakery/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. The kitchen palette uses
// 256-color codes where the basic 16 have no match.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPurple:  lipgloss.NewStyle().Foreground(lipgloss.Color("93")),
	core.ColorMaroon:  lipgloss.NewStyle().Foreground(lipgloss.Color("88")),
	core.ColorPink:    lipgloss.NewStyle().Foreground(lipgloss.Color("218")),
	core.ColorSalmon:  lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
	core.ColorGold:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorCream:   lipgloss.NewStyle().Foreground(lipgloss.Color("230")),
	core.ColorBrown:   lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
}

// styleFor returns the style for c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
