package console

import (
	"github.com/vovakirdan/pocket-console/internal/config"
	"github.com/vovakirdan/pocket-console/internal/core"
)

// Controls maps every logical intent to the physical input that triggers
// it. Unbound intents hold the zero Binding and never fire.
type Controls struct {
	MenuUp      core.Binding
	MenuDown    core.Binding
	MenuConfirm core.Binding

	DodgeLeft   core.Binding // One step per press
	DodgeRight  core.Binding
	DodgeSteer  bool // X axis steers while deflected
	DodgeFire   core.Binding
	DodgeShield core.Binding
	DodgePause  core.Binding

	CursorUp    core.Binding
	CursorDown  core.Binding
	CursorLeft  core.Binding
	CursorRight core.Binding
	Place       core.Binding
	MatchPause  core.Binding
	MatchReset  []core.Binding // After the match is decided
	MatchMenu   []core.Binding

	Retry  core.Binding
	ToMenu core.Binding

	// EscapeTicks > 0 enables the long-press escape on the Escape button.
	Escape      core.Button
	EscapeTicks int
}

// ControlsFor builds the control scheme of a ruleset.
func ControlsFor(r config.Ruleset) Controls {
	var c Controls
	switch r.Steering {
	case config.SteeringJoystick:
		c = joystickControls()
	default:
		c = buttonControls()
	}

	if r.Escape == config.EscapeLongPress {
		c.DodgePause = core.Binding{}
		c.MatchPause = core.Binding{}
		c.Escape = core.ButtonStick
		c.EscapeTicks = r.LongPressTicks()
	}
	return c
}

func buttonControls() Controls {
	return Controls{
		MenuUp:      core.Press(core.ButtonRed),
		MenuDown:    core.Press(core.ButtonWhite),
		MenuConfirm: core.Press(core.ButtonBlue),

		DodgeLeft:  core.Press(core.ButtonYellow),
		DodgeRight: core.Press(core.ButtonBlue),
		DodgeFire:  core.Press(core.ButtonRed),
		DodgePause: core.Press(core.ButtonWhite),

		CursorUp:    core.Press(core.ButtonRed),
		CursorDown:  core.Press(core.ButtonWhite),
		CursorLeft:  core.Press(core.ButtonYellow),
		CursorRight: core.Press(core.ButtonBlue),
		Place:       core.Chord(core.ButtonYellow, core.ButtonBlue),
		MatchPause:  core.Chord(core.ButtonWhite, core.ButtonRed),
		MatchReset:  []core.Binding{core.Press(core.ButtonRed), core.Press(core.ButtonYellow)},
		MatchMenu:   []core.Binding{core.Press(core.ButtonWhite), core.Press(core.ButtonBlue)},

		Retry:  core.Press(core.ButtonWhite),
		ToMenu: core.Press(core.ButtonYellow),
	}
}

func joystickControls() Controls {
	return Controls{
		MenuUp:      core.Tilt(core.AxisY, core.DirLow),
		MenuDown:    core.Tilt(core.AxisY, core.DirHigh),
		MenuConfirm: core.Press(core.ButtonRed),

		DodgeSteer:  true,
		DodgeFire:   core.Press(core.ButtonRed),
		DodgeShield: core.Press(core.ButtonBlue),
		DodgePause:  core.Chord(core.ButtonWhite, core.ButtonRed),

		CursorUp:    core.Tilt(core.AxisY, core.DirLow),
		CursorDown:  core.Tilt(core.AxisY, core.DirHigh),
		CursorLeft:  core.Tilt(core.AxisX, core.DirLow),
		CursorRight: core.Tilt(core.AxisX, core.DirHigh),
		Place:       core.Press(core.ButtonRed),
		MatchPause:  core.Chord(core.ButtonWhite, core.ButtonRed),
		MatchReset:  []core.Binding{core.Press(core.ButtonRed)},
		MatchMenu:   []core.Binding{core.Press(core.ButtonBlue)},

		Retry:  core.Press(core.ButtonRed),
		ToMenu: core.Press(core.ButtonBlue),
	}
}

// takeAny consumes the first binding that fired.
func takeAny(f *core.InputFrame, bindings []core.Binding) bool {
	for _, b := range bindings {
		if f.Take(b) {
			return true
		}
	}
	return false
}
