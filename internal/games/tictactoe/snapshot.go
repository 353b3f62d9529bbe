package tictactoe

// Snapshot captures the complete game state for rendering.
type Snapshot struct {
	Board   Board
	Turn    Mark
	Cursor  Cell
	Outcome Outcome
	Moves   int

	// WinLine holds the winning cells when HasLine is set.
	WinLine [Size]Cell
	HasLine bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Board:   g.board,
		Turn:    g.turn,
		Cursor:  g.cursor,
		Outcome: g.outcome,
		Moves:   g.moves,
	}
	if g.line >= 0 {
		s.WinLine = lines[g.line]
		s.HasLine = true
	}
	return s
}

// Over reports whether the snapshot shows a finished match.
func (s Snapshot) Over() bool {
	return s.Outcome != InProgress
}
