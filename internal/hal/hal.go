// Package hal is the boundary between the console firmware and the hardware
// it runs on: the button and joystick lines, and the display panel.
// On the host every piece is virtual and driven by a frontend.
package hal

import (
	"github.com/vovakirdan/pocket-console/internal/core"
	"github.com/vovakirdan/pocket-console/internal/display"
)

// Pins is the input bank the sampler polls.
type Pins = core.Pins

// Display is the panel frames are presented on.
type Display interface {
	// Init brings the panel up. A failure is fatal for the device.
	Init() error
	// Present shows a finished frame.
	Present(c *display.Canvas) error
}

// AxisCenter is the resting reading of an analog axis.
const AxisCenter = core.AnalogMax / 2

// VirtualPins is an in-memory input bank. Buttons are active-low like the
// real wiring: a pressed button reads Low. Axes rest at the center.
// It is not safe for concurrent use; frontends drive it from their update
// loop.
type VirtualPins struct {
	pressed [len(core.Buttons)]bool
	axes    [2]uint16
}

// NewVirtualPins creates a bank with every button released and both axes
// centered.
func NewVirtualPins() *VirtualPins {
	p := &VirtualPins{}
	p.Center()
	return p
}

// Digital implements core.Pins.
func (p *VirtualPins) Digital(b core.Button) core.Level {
	if int(b) < len(p.pressed) && p.pressed[b] {
		return core.Low
	}
	return core.High
}

// Analog implements core.Pins.
func (p *VirtualPins) Analog(a core.Axis) uint16 {
	if int(a) < len(p.axes) {
		return p.axes[a]
	}
	return AxisCenter
}

// Press pulls the button line low.
func (p *VirtualPins) Press(b core.Button) {
	p.Set(b, true)
}

// Release lets the button line float high.
func (p *VirtualPins) Release(b core.Button) {
	p.Set(b, false)
}

// Set drives a button line.
func (p *VirtualPins) Set(b core.Button, down bool) {
	if int(b) < len(p.pressed) {
		p.pressed[b] = down
	}
}

// Pressed reports whether the button is held.
func (p *VirtualPins) Pressed(b core.Button) bool {
	return int(b) < len(p.pressed) && p.pressed[b]
}

// SetAxis sets a raw axis reading, clamped to the 10-bit range.
func (p *VirtualPins) SetAxis(a core.Axis, raw int) {
	if int(a) < len(p.axes) {
		p.axes[a] = uint16(core.Clamp(raw, 0, core.AnalogMax))
	}
}

// Tilt pushes an axis fully to one side, or back to center for DirNeutral.
func (p *VirtualPins) Tilt(a core.Axis, dir core.Direction) {
	switch dir {
	case core.DirLow:
		p.SetAxis(a, 0)
	case core.DirHigh:
		p.SetAxis(a, core.AnalogMax)
	default:
		p.SetAxis(a, AxisCenter)
	}
}

// Center returns both axes to rest.
func (p *VirtualPins) Center() {
	p.axes = [2]uint16{AxisCenter, AxisCenter}
}

// ReleaseAll releases every button and centers the axes.
func (p *VirtualPins) ReleaseAll() {
	p.pressed = [len(core.Buttons)]bool{}
	p.Center()
}
