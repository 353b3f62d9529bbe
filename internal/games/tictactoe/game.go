// Package tictactoe implements two-player TicTacToe on a 3x3 board driven by
// a movable cursor.
package tictactoe

import (
	"github.com/vovakirdan/pocket-console/internal/config"
	"github.com/vovakirdan/pocket-console/internal/core"
)

// Size is the board edge length.
const Size = 3

// Mark is the content of one cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String returns the glyph for the mark.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Other returns the opposing mark.
func (m Mark) Other() Mark {
	if m == X {
		return O
	}
	return X
}

// Outcome is the state of the match.
type Outcome uint8

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "Draw"
	default:
		return "In progress"
	}
}

// Heading is a cursor move.
type Heading uint8

const (
	Up Heading = iota
	Down
	Left
	Right
)

// Cell addresses one board cell.
type Cell struct {
	Row, Col int
}

// Board is the 3x3 grid, indexed [row][col].
type Board [Size][Size]Mark

// Game holds the complete TicTacToe state.
type Game struct {
	start   config.CursorStart
	board   Board
	turn    Mark
	outcome Outcome
	line    int // Index into lines of the winning line, -1 if none
	cursor  Cell
	moves   int
}

// New creates a game whose cursor starts at the given position.
func New(start config.CursorStart) *Game {
	g := &Game{start: start}
	g.Reset()
	return g
}

// Reset clears the board and gives the first move to X.
func (g *Game) Reset() {
	g.board = Board{}
	g.turn = X
	g.outcome = InProgress
	g.line = -1
	g.moves = 0
	g.cursor = Cell{}
	if g.start == config.CursorCenter {
		g.cursor = Cell{Row: 1, Col: 1}
	}
}

// MoveCursor shifts the cursor one cell. Moves past an edge and moves after
// the game is over are rejected.
func (g *Game) MoveCursor(h Heading) core.Result {
	if g.Over() {
		return core.Rejected
	}
	next := g.cursor
	switch h {
	case Up:
		next.Row--
	case Down:
		next.Row++
	case Left:
		next.Col--
	case Right:
		next.Col++
	}
	next.Row = core.Clamp(next.Row, 0, Size-1)
	next.Col = core.Clamp(next.Col, 0, Size-1)
	if next == g.cursor {
		return core.Rejected
	}
	g.cursor = next
	return core.Accepted
}

// Place puts the current mark under the cursor, hands the turn over and
// evaluates the board.
func (g *Game) Place() core.Result {
	if g.Over() {
		return core.Rejected
	}
	c := g.cursor
	if g.board[c.Row][c.Col] != Empty {
		return core.Rejected
	}
	g.board[c.Row][c.Col] = g.turn
	g.turn = g.turn.Other()
	g.moves++
	g.outcome, g.line = Evaluate(g.board)
	return core.Accepted
}

// Over reports whether the match has ended.
func (g *Game) Over() bool {
	return g.outcome != InProgress
}

// Turn returns the mark that moves next.
func (g *Game) Turn() Mark {
	return g.turn
}

// Outcome returns the state of the match.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Winner returns the winning mark, or Empty for a draw or an ongoing match.
func (g *Game) Winner() Mark {
	switch g.outcome {
	case XWins:
		return X
	case OWins:
		return O
	default:
		return Empty
	}
}

// Cursor returns the cursor position.
func (g *Game) Cursor() Cell {
	return g.cursor
}
