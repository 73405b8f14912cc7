package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbismaya/phantom-pong/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorWhite:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorBlue:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorGreen:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorRed:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorAccent:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorYellow:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorFadeHigh: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorFadeMid:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorFadeLow:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
