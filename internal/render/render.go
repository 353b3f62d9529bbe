// Package render draws console screens onto the 128x64 canvas. It only
// reads the snapshot it is given and has no way to affect the game.
package render

import (
	"fmt"

	"github.com/vovakirdan/pocket-console/internal/console"
	"github.com/vovakirdan/pocket-console/internal/core"
	"github.com/vovakirdan/pocket-console/internal/display"
)

// Screen layout.
const (
	titleY     = 0
	ruleY      = 25
	optionsTop = 27
	maxPitch   = 14
)

// Frame draws the screen for the snapshot's mode onto a cleared canvas.
func Frame(c *display.Canvas, s console.Snapshot) {
	switch s.Mode.Kind {
	case console.KindMenu:
		drawMenu(c, "Pocket", s.Main)
	case console.KindRoboDodge:
		drawRoboDodge(c, s)
	case console.KindTicTacToe:
		drawTicTacToe(c, s)
	case console.KindPaused:
		drawMenu(c, "Paused", s.Pause)
	case console.KindConfirmReset:
		drawMenu(c, "Restart?", s.Confirm)
	case console.KindGameOver:
		drawGameOver(c, s)
	}
}

// drawMenu draws a size-2 title over a rule and the options below it. The
// selected option is shown inverted on a full-width bar.
func drawMenu(c *display.Canvas, title string, v console.MenuView) {
	c.TextCentered(titleY, title, 2, display.On)
	c.HLine(0, ruleY, c.Width(), display.On)

	if len(v.Options) == 0 {
		return
	}
	pitch := min(maxPitch, (c.Height()-optionsTop)/len(v.Options))
	for i, opt := range v.Options {
		y := optionsTop + i*pitch
		c.TextCentered(y, opt.Label, 1, display.On)
		if i == v.Selected {
			c.FillRect(core.NewRect(0, y, c.Width(), pitch-1), display.Invert)
		}
	}
}

func drawGameOver(c *display.Canvas, s console.Snapshot) {
	c.TextCentered(titleY, "Game Over", 2, display.On)
	c.HLine(0, ruleY, c.Width(), display.On)

	ctl := s.Controls
	c.Text(2, optionsTop, fmt.Sprintf("Score %d", s.RoboDodge.Score), 1, display.On)
	c.Text(2, optionsTop+12, fmt.Sprintf("Best  %d", s.Best), 1, display.On)
	hint := fmt.Sprintf("%s:retry %s:menu", short(ctl.Retry), short(ctl.ToMenu))
	c.Text(2, optionsTop+24, hint, 1, display.On)
}
