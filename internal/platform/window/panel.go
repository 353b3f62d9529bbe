// Package window runs the console in a desktop window with Ebitengine.
// The keyboard drives the virtual lines directly: a line is down exactly
// while one of its keys is held.
package window

import (
	"errors"
	"image/color"

	"github.com/vovakirdan/pocket-console/internal/core"
	"github.com/vovakirdan/pocket-console/internal/display"
)

// ErrBadScale is returned by Init for a non-positive window scale.
var ErrBadScale = errors.New("window: scale must be positive")

// Panel colors
var (
	inkOn  = color.RGBA{R: 0x9a, G: 0xe6, B: 0xff, A: 0xff}
	inkOff = color.RGBA{R: 0x05, G: 0x08, B: 0x10, A: 0xff}
)

// Panel is the display panel of the window. It keeps the last frame as
// RGBA bytes ready for the GPU.
type Panel struct {
	scale int
	pix   []byte
}

// NewPanel creates a panel for the console display at the given scale.
func NewPanel(scale int) *Panel {
	return &Panel{
		scale: scale,
		pix:   make([]byte, 4*core.ScreenW*core.ScreenH),
	}
}

// Init checks the window geometry.
func (p *Panel) Init() error {
	if p.scale <= 0 {
		return ErrBadScale
	}
	return nil
}

// Present converts the frame to RGBA.
func (p *Panel) Present(c *display.Canvas) error {
	i := 0
	for y := 0; y < core.ScreenH; y++ {
		for x := 0; x < core.ScreenW; x++ {
			ink := inkOff
			if c.Lit(x, y) {
				ink = inkOn
			}
			p.pix[i], p.pix[i+1], p.pix[i+2], p.pix[i+3] = ink.R, ink.G, ink.B, ink.A
			i += 4
		}
	}
	return nil
}

// Pixels returns the RGBA bytes of the last frame.
func (p *Panel) Pixels() []byte {
	return p.pix
}
