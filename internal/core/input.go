package core

import "strings"

// Button identifies one physical push-button line of the console.
type Button uint8

const (
	ButtonRed Button = iota
	ButtonWhite
	ButtonYellow
	ButtonBlue
	ButtonStick // Joystick push
	numButtons
)

// Buttons lists every button line in sampling order.
var Buttons = [...]Button{ButtonRed, ButtonWhite, ButtonYellow, ButtonBlue, ButtonStick}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonRed:
		return "Red"
	case ButtonWhite:
		return "White"
	case ButtonYellow:
		return "Yellow"
	case ButtonBlue:
		return "Blue"
	case ButtonStick:
		return "Stick"
	default:
		return "Unknown"
	}
}

// ParseButton resolves a button by its case-insensitive name.
func ParseButton(name string) (Button, bool) {
	for _, b := range Buttons {
		if strings.EqualFold(b.String(), name) {
			return b, true
		}
	}
	return 0, false
}

// Axis identifies one analog joystick axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	numAxes
)

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return "Unknown"
	}
}

// Direction is the three-zone quantisation of an analog axis.
// On X, Low is left; on Y, Low is up.
type Direction int8

const (
	DirLow     Direction = -1
	DirNeutral Direction = 0
	DirHigh    Direction = 1
)

// Level is the electrical state of a digital input line.
// Buttons are wired active-low: a pressed button reads Low.
type Level uint8

const (
	Low Level = iota
	High
)

// AnalogMax is the full-scale reading of a 10-bit analog axis.
const AnalogMax = 1023

// Pins is the backing hardware the sampler polls.
type Pins interface {
	Digital(b Button) Level
	Analog(a Axis) uint16
}

// Thresholds split the analog range into three zones. Both are fractions of
// full scale; readings below Low or above High leave the neutral zone.
type Thresholds struct {
	Low  float64
	High float64
}

// DefaultThresholds returns the 40% / 60% split of the baseline hardware.
func DefaultThresholds() Thresholds {
	return Thresholds{Low: 0.4, High: 0.6}
}

// Zone maps a raw analog reading to a direction.
func (t Thresholds) Zone(raw uint16) Direction {
	v := float64(raw)
	switch {
	case v < t.Low*AnalogMax:
		return DirLow
	case v > t.High*AnalogMax:
		return DirHigh
	default:
		return DirNeutral
	}
}

// buttonSet is a bitmask over button lines.
type buttonSet uint8

func (s buttonSet) has(b Button) bool       { return s&(1<<b) != 0 }
func (s buttonSet) with(b Button) buttonSet { return s | 1<<b }

type bindingKind uint8

const (
	bindNone bindingKind = iota
	bindPress
	bindChord
	bindTilt
)

// Binding names the physical input that triggers one logical control:
// a single button, a two-button chord, or an axis leaving neutral.
// The zero Binding is unbound and never fires.
type Binding struct {
	kind bindingKind
	a, b Button
	axis Axis
	dir  Direction
}

// Press binds a single button.
func Press(b Button) Binding {
	return Binding{kind: bindPress, a: b}
}

// Chord binds two buttons pressed together.
func Chord(a, b Button) Binding {
	return Binding{kind: bindChord, a: a, b: b}
}

// Tilt binds an axis moving out of neutral toward dir.
func Tilt(axis Axis, dir Direction) Binding {
	return Binding{kind: bindTilt, axis: axis, dir: dir}
}

// Bound reports whether the binding names any input.
func (bd Binding) Bound() bool {
	return bd.kind != bindNone
}

// IsChord reports whether the binding needs two buttons.
func (bd Binding) IsChord() bool {
	return bd.kind == bindChord
}

// String describes the binding for help text.
func (bd Binding) String() string {
	switch bd.kind {
	case bindPress:
		return bd.a.String()
	case bindChord:
		return bd.a.String() + "+" + bd.b.String()
	case bindTilt:
		switch {
		case bd.axis == AxisX && bd.dir == DirLow:
			return "Stick left"
		case bd.axis == AxisX && bd.dir == DirHigh:
			return "Stick right"
		case bd.axis == AxisY && bd.dir == DirLow:
			return "Stick up"
		default:
			return "Stick down"
		}
	default:
		return "-"
	}
}

// InputFrame is the input state captured by one sample.
//
// A button press is claimed the first time a binding consumes it and stays
// claimed until the button is released, so holding a button never fires
// twice and a chord is never re-read as two single presses.
type InputFrame struct {
	down    buttonSet
	rose    buttonSet
	claimed buttonSet
	held    [numButtons]int

	axis        [numAxes]Direction
	prevAxis    [numAxes]Direction
	axisClaimed [numAxes]bool
}

// Down reports the current level of a button (true while pressed).
func (f *InputFrame) Down(b Button) bool {
	return f.down.has(b)
}

// Rose reports whether the button went down in this sample.
func (f *InputFrame) Rose(b Button) bool {
	return f.rose.has(b)
}

// Held returns how many consecutive samples the button has been down.
func (f *InputFrame) Held(b Button) int {
	if b >= numButtons {
		return 0
	}
	return f.held[b]
}

// Axis returns the current zone of an axis.
func (f *InputFrame) Axis(a Axis) Direction {
	if a >= numAxes {
		return DirNeutral
	}
	return f.axis[a]
}

// Take consumes the binding if it fired in this sample.
//
// A press fires on its rising edge. A chord fires when both buttons are
// down, neither is claimed, and at least one of them rose in this sample.
// A tilt fires when the axis moved into the bound zone in this sample.
func (f *InputFrame) Take(bd Binding) bool {
	switch bd.kind {
	case bindPress:
		if !f.rose.has(bd.a) || f.claimed.has(bd.a) {
			return false
		}
		f.claimed = f.claimed.with(bd.a)
		return true

	case bindChord:
		if !f.down.has(bd.a) || !f.down.has(bd.b) {
			return false
		}
		if f.claimed.has(bd.a) || f.claimed.has(bd.b) {
			return false
		}
		if !f.rose.has(bd.a) && !f.rose.has(bd.b) {
			return false
		}
		f.claimed = f.claimed.with(bd.a).with(bd.b)
		return true

	case bindTilt:
		if bd.axis >= numAxes || f.axisClaimed[bd.axis] {
			return false
		}
		if f.axis[bd.axis] != bd.dir || f.prevAxis[bd.axis] == bd.dir {
			return false
		}
		f.axisClaimed[bd.axis] = true
		return true
	}
	return false
}

// TakeHeld consumes a long press: it fires once when an unclaimed button
// has been held for at least ticks samples.
func (f *InputFrame) TakeHeld(b Button, ticks int) bool {
	if b >= numButtons || ticks <= 0 {
		return false
	}
	if !f.down.has(b) || f.claimed.has(b) || f.held[b] < ticks {
		return false
	}
	f.claimed = f.claimed.with(b)
	return true
}

// ClaimDown claims every button that is down in this sample, so inputs held
// from a previous screen neither fire nor count toward a long press until
// they are released.
func (f *InputFrame) ClaimDown() {
	f.claimed |= f.down
}

// Sampler polls the backing pins once per tick and derives edges.
type Sampler struct {
	thresholds Thresholds
	frame      InputFrame
}

// NewSampler creates a sampler with the given analog thresholds.
func NewSampler(th Thresholds) *Sampler {
	return &Sampler{thresholds: th}
}

// Sample reads every line and returns the frame for this tick.
// The frame is owned by the sampler and is overwritten by the next Sample.
func (s *Sampler) Sample(p Pins) *InputFrame {
	f := &s.frame

	var down buttonSet
	for _, b := range Buttons {
		if p.Digital(b) == Low {
			down = down.with(b)
		}
	}

	f.rose = down &^ f.down
	f.claimed &= down // releasing a button clears its claim
	f.down = down

	for _, b := range Buttons {
		if down.has(b) {
			f.held[b]++
		} else {
			f.held[b] = 0
		}
	}

	for a := Axis(0); a < numAxes; a++ {
		f.prevAxis[a] = f.axis[a]
		f.axis[a] = s.thresholds.Zone(p.Analog(a))
		f.axisClaimed[a] = false
	}

	return f
}

// Reset forgets all previous samples.
func (s *Sampler) Reset() {
	s.frame = InputFrame{}
}
