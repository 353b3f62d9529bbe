package console

import (
	"time"

	"github.com/vovakirdan/pocket-console/internal/config"
	"github.com/vovakirdan/pocket-console/internal/core"
	"github.com/vovakirdan/pocket-console/internal/games/robododge"
	"github.com/vovakirdan/pocket-console/internal/games/tictactoe"
)

// Event is a game result produced during a tick.
type Event uint8

const (
	EventNone Event = iota
	EventPlayerDied
	EventMatchOver
)

// Transition describes what one tick did to the mode.
type Transition struct {
	From  Mode
	To    Mode
	Event Event
}

// Changed reports whether the mode changed.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Machine is the top-level state machine. It owns both game engines and
// the menus, and consumes one input frame per tick.
type Machine struct {
	rules    config.Ruleset
	controls Controls
	mode     Mode

	main    *Menu
	pause   *Menu
	confirm *Menu

	dodge *robododge.Game
	match *tictactoe.Game

	best int
}

// NewMachine creates a machine showing the main menu.
func NewMachine(rules config.Ruleset, seed int64) *Machine {
	return &Machine{
		rules:    rules,
		controls: ControlsFor(rules),
		mode:     ModeOf(KindMenu),
		main:     MainMenu(),
		pause:    PauseMenu(),
		confirm:  ConfirmMenu(),
		dodge:    robododge.New(rules.RoboDodge, seed),
		match:    tictactoe.New(rules.TicTacToe.CursorStart),
	}
}

// Mode returns the current screen.
func (m *Machine) Mode() Mode {
	return m.mode
}

// Controls returns the active control scheme.
func (m *Machine) Controls() Controls {
	return m.controls
}

// RoboDodge returns the RoboDodge engine.
func (m *Machine) RoboDodge() *robododge.Game {
	return m.dodge
}

// TicTacToe returns the TicTacToe engine.
func (m *Machine) TicTacToe() *tictactoe.Game {
	return m.match
}

// Best returns the best RoboDodge score shown on the game-over screen.
func (m *Machine) Best() int {
	return m.best
}

// SetBest updates the best RoboDodge score.
func (m *Machine) SetBest(score int) {
	m.best = score
}

// Tick consumes one input frame and advances the foreground screen.
func (m *Machine) Tick(f *core.InputFrame, dt time.Duration) Transition {
	tr := Transition{From: m.mode}

	switch m.mode.Kind {
	case KindMenu:
		m.tickMenu(f)
	case KindRoboDodge:
		tr.Event = m.tickRoboDodge(f, dt)
	case KindTicTacToe:
		tr.Event = m.tickTicTacToe(f)
	case KindPaused:
		m.tickPaused(f)
	case KindConfirmReset:
		m.tickConfirm(f)
	case KindGameOver:
		m.tickGameOver(f)
	}

	tr.To = m.mode
	if tr.Changed() && tr.To.InGame() {
		// A game starts with no inherited holds.
		f.ClaimDown()
	}
	return tr
}

func (m *Machine) tickMenu(f *core.InputFrame) {
	c := &m.controls
	switch {
	case f.Take(c.MenuUp):
		m.main.Prev()
	case f.Take(c.MenuDown):
		m.main.Next()
	case f.Take(c.MenuConfirm):
		switch m.main.Confirm() {
		case ActionPlayRoboDodge:
			m.dodge.Reset()
			m.mode = ModeOf(KindRoboDodge)
		case ActionPlayTicTacToe:
			m.match.Reset()
			m.mode = ModeOf(KindTicTacToe)
		}
	}
}

// escaped handles the in-game escape: the long press straight to the menu,
// or the pause binding.
func (m *Machine) escaped(f *core.InputFrame, pause core.Binding) bool {
	c := &m.controls
	if c.EscapeTicks > 0 && f.TakeHeld(c.Escape, c.EscapeTicks) {
		m.mode = ModeOf(KindMenu)
		return true
	}
	if f.Take(pause) {
		m.pause.Reset()
		m.mode = Paused(m.mode.Kind)
		return true
	}
	return false
}

func (m *Machine) tickRoboDodge(f *core.InputFrame, dt time.Duration) Event {
	c := &m.controls
	if m.escaped(f, c.DodgePause) {
		return EventNone
	}

	var in robododge.Input
	if f.Take(c.DodgeLeft) {
		in.Step += core.DirLow
	}
	if f.Take(c.DodgeRight) {
		in.Step += core.DirHigh
	}
	if c.DodgeSteer {
		in.Steer = f.Axis(core.AxisX)
	}
	in.Fire = f.Take(c.DodgeFire)
	in.Shield = f.Take(c.DodgeShield)

	if m.dodge.Tick(in, dt) == robododge.PlayerDied {
		m.mode = ModeOf(KindGameOver)
		return EventPlayerDied
	}
	return EventNone
}

func (m *Machine) tickTicTacToe(f *core.InputFrame) Event {
	c := &m.controls
	if m.escaped(f, c.MatchPause) {
		return EventNone
	}

	if m.match.Over() {
		switch {
		case takeAny(f, c.MatchReset):
			m.match.Reset()
		case takeAny(f, c.MatchMenu):
			m.mode = ModeOf(KindMenu)
		}
		return EventNone
	}

	// The place chord shares lines with the cursor buttons and is checked
	// first.
	if f.Take(c.Place) {
		if m.match.Place() == core.Accepted && m.match.Over() {
			return EventMatchOver
		}
		return EventNone
	}
	switch {
	case f.Take(c.CursorUp):
		m.match.MoveCursor(tictactoe.Up)
	case f.Take(c.CursorDown):
		m.match.MoveCursor(tictactoe.Down)
	case f.Take(c.CursorLeft):
		m.match.MoveCursor(tictactoe.Left)
	case f.Take(c.CursorRight):
		m.match.MoveCursor(tictactoe.Right)
	}
	return EventNone
}

func (m *Machine) tickPaused(f *core.InputFrame) {
	c := &m.controls
	switch {
	case f.Take(c.MenuUp):
		m.pause.Prev()
	case f.Take(c.MenuDown):
		m.pause.Next()
	case f.Take(c.MenuConfirm):
		switch m.pause.Confirm() {
		case ActionResume:
			m.mode = ModeOf(m.mode.Origin)
		case ActionRestart:
			m.confirm.Reset()
			m.mode = ConfirmReset(m.mode.Origin)
		case ActionExit:
			m.mode = ModeOf(KindMenu)
		}
	}
}

func (m *Machine) tickConfirm(f *core.InputFrame) {
	c := &m.controls
	switch {
	case f.Take(c.MenuUp):
		m.confirm.Prev()
	case f.Take(c.MenuDown):
		m.confirm.Next()
	case f.Take(c.MenuConfirm):
		switch m.confirm.Confirm() {
		case ActionYes:
			origin := m.mode.Origin
			m.resetGame(origin)
			m.mode = ModeOf(origin)
		case ActionNo:
			m.mode = Paused(m.mode.Origin)
		}
	}
}

func (m *Machine) tickGameOver(f *core.InputFrame) {
	c := &m.controls
	switch {
	case f.Take(c.Retry):
		m.dodge.Reset()
		m.mode = ModeOf(KindRoboDodge)
	case f.Take(c.ToMenu):
		m.mode = ModeOf(KindMenu)
	}
}

func (m *Machine) resetGame(k Kind) {
	switch k {
	case KindRoboDodge:
		m.dodge.Reset()
	case KindTicTacToe:
		m.match.Reset()
	}
}
