package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocket-console/internal/display"
)

var (
	bezelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	pixelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(1)
)

// RenderScreen draws the canvas as block glyphs inside the device bezel.
func RenderScreen(c *display.Canvas) string {
	return bezelStyle.Render(pixelStyle.Render(c.Blocks()))
}
