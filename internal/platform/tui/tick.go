// Package tui runs the console inside a terminal with Bubble Tea. Keys drive
// the virtual button and stick lines; the display is drawn with quadrant
// block glyphs inside a bezel.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to poll the device loop.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that polls again after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
