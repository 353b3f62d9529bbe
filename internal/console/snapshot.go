package console

import (
	"github.com/vovakirdan/pocket-console/internal/games/robododge"
	"github.com/vovakirdan/pocket-console/internal/games/tictactoe"
)

// Snapshot is the read-only state handed to the renderer once per tick.
type Snapshot struct {
	Mode     Mode
	Ruleset  string
	Controls Controls

	Main    MenuView
	Pause   MenuView
	Confirm MenuView

	RoboDodge robododge.Snapshot
	TicTacToe tictactoe.Snapshot
	Best      int
}

// Snapshot captures the current state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Mode:      m.mode,
		Ruleset:   m.rules.Name,
		Controls:  m.controls,
		Main:      m.main.View(),
		Pause:     m.pause.View(),
		Confirm:   m.confirm.View(),
		RoboDodge: m.dodge.Snapshot(),
		TicTacToe: m.match.Snapshot(),
		Best:      m.best,
	}
}
