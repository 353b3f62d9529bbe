package render

import (
	"fmt"

	"github.com/vovakirdan/pocket-console/internal/console"
	"github.com/vovakirdan/pocket-console/internal/core"
	"github.com/vovakirdan/pocket-console/internal/display"
)

const (
	bulletLen   = 3
	enemyRadius = 3
	shieldR     = 7
)

func drawRoboDodge(c *display.Canvas, s console.Snapshot) {
	g := s.RoboDodge

	// Player: a body with a cannon on top.
	half := g.PlayerWidth / 2
	c.FillRect(core.NewRect(g.PlayerX-half, g.PlayerRow-2, g.PlayerWidth, 5), display.On)
	c.VLine(g.PlayerX, g.PlayerRow-4, 2, display.On)
	if g.ShieldActive {
		c.Circle(g.PlayerX, g.PlayerRow, shieldR, display.On)
	}

	for _, b := range g.Bullets {
		if b.Active {
			c.VLine(b.X, b.Y, bulletLen, display.On)
		}
	}
	for _, e := range g.Enemies {
		if e.Active {
			c.Circle(e.X, e.Y, enemyRadius, display.On)
			c.Pixel(e.X, e.Y, display.On)
		}
	}

	c.Text(0, 0, fmt.Sprintf("%d", g.Score), 1, display.On)

	if g.ShieldEnabled && g.ChargeFull > 0 {
		const barW, barH = 30, 5
		x := c.Width() - barW - 1
		c.Rect(core.NewRect(x, 1, barW, barH), display.On)
		fill := (barW - 2) * g.Charge / g.ChargeFull
		c.FillRect(core.NewRect(x+1, 2, fill, barH-2), display.On)
	}
}
