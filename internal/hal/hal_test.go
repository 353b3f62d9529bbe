package hal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pocket-console/internal/core"
	"github.com/vovakirdan/pocket-console/internal/display"
)

func TestVirtualPinsActiveLow(t *testing.T) {
	p := NewVirtualPins()
	assert.Equal(t, core.High, p.Digital(core.ButtonRed))

	p.Press(core.ButtonRed)
	assert.Equal(t, core.Low, p.Digital(core.ButtonRed))
	assert.True(t, p.Pressed(core.ButtonRed))

	p.Release(core.ButtonRed)
	assert.Equal(t, core.High, p.Digital(core.ButtonRed))
}

func TestVirtualPinsAxes(t *testing.T) {
	p := NewVirtualPins()
	th := core.DefaultThresholds()
	assert.Equal(t, core.DirNeutral, th.Zone(p.Analog(core.AxisX)))

	p.Tilt(core.AxisX, core.DirLow)
	assert.Equal(t, core.DirLow, th.Zone(p.Analog(core.AxisX)))

	p.SetAxis(core.AxisY, 5000)
	assert.Equal(t, uint16(core.AnalogMax), p.Analog(core.AxisY))

	p.Press(core.ButtonBlue)
	p.ReleaseAll()
	assert.False(t, p.Pressed(core.ButtonBlue))
	assert.Equal(t, uint16(AxisCenter), p.Analog(core.AxisX))
}

func TestMemoryDisplay(t *testing.T) {
	t.Run("present before init", func(t *testing.T) {
		d := NewMemoryDisplay()
		assert.ErrorIs(t, d.Present(display.NewScreenCanvas()), ErrNotInitialized)
	})

	t.Run("keeps a copy of the last frame", func(t *testing.T) {
		d := NewMemoryDisplay()
		require.NoError(t, d.Init())

		c := display.NewScreenCanvas()
		c.Pixel(3, 4, display.On)
		require.NoError(t, d.Present(c))
		c.Clear()

		assert.True(t, d.Frame().Lit(3, 4))
		assert.Equal(t, 1, d.Frames())
	})

	t.Run("failing init", func(t *testing.T) {
		boom := errors.New("no ack on i2c")
		d := NewFailingDisplay(boom)
		assert.ErrorIs(t, d.Init(), boom)
	})
}
