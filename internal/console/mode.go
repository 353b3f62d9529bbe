// Package console ties the input sampler, the two games and the menus into
// the device's top-level state machine, and runs it at a fixed cadence.
package console

// Kind names a top-level screen.
type Kind uint8

const (
	KindMenu Kind = iota
	KindRoboDodge
	KindTicTacToe
	KindPaused
	KindConfirmReset
	KindGameOver
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "Menu"
	case KindRoboDodge:
		return "RoboDodge"
	case KindTicTacToe:
		return "TicTacToe"
	case KindPaused:
		return "Paused"
	case KindConfirmReset:
		return "ConfirmReset"
	case KindGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Mode is the current screen. Origin is the game a Paused or ConfirmReset
// screen returns to and is zero for every other kind.
type Mode struct {
	Kind   Kind
	Origin Kind
}

// ModeOf returns a mode without an origin.
func ModeOf(k Kind) Mode {
	return Mode{Kind: k}
}

// Paused returns the pause screen over the given game.
func Paused(origin Kind) Mode {
	return Mode{Kind: KindPaused, Origin: origin}
}

// ConfirmReset returns the restart confirmation for the given game.
func ConfirmReset(origin Kind) Mode {
	return Mode{Kind: KindConfirmReset, Origin: origin}
}

// InGame reports whether a game is running in the foreground.
func (m Mode) InGame() bool {
	return m.Kind == KindRoboDodge || m.Kind == KindTicTacToe
}

// String returns the mode with its origin, if any.
func (m Mode) String() string {
	switch m.Kind {
	case KindPaused, KindConfirmReset:
		return m.Kind.String() + "(" + m.Origin.String() + ")"
	default:
		return m.Kind.String()
	}
}
