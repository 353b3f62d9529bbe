package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/pocket-console/internal/core"
	"github.com/vovakirdan/pocket-console/internal/display"
)

func TestPanelInit(t *testing.T) {
	assert.NoError(t, NewPanel(DefaultScale).Init())
	assert.ErrorIs(t, NewPanel(0).Init(), ErrBadScale)
}

func TestPanelPresent(t *testing.T) {
	p := NewPanel(1)
	c := display.NewScreenCanvas()
	c.Pixel(2, 1, display.On)

	assert.NoError(t, p.Present(c))

	px := p.Pixels()
	assert.Len(t, px, 4*core.ScreenW*core.ScreenH)
	lit := 4 * (1*core.ScreenW + 2)
	assert.Equal(t, inkOn.R, px[lit])
	assert.Equal(t, inkOff.R, px[0])
	assert.Equal(t, byte(0xff), px[3], "opaque")
}
