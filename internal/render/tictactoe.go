package render

import (
	"github.com/vovakirdan/pocket-console/internal/console"
	"github.com/vovakirdan/pocket-console/internal/core"
	"github.com/vovakirdan/pocket-console/internal/display"
	"github.com/vovakirdan/pocket-console/internal/games/tictactoe"
)

// Board geometry.
const (
	boardX  = 6
	boardY  = 8
	cellPx  = 16
	boardPx = cellPx * tictactoe.Size
	panelX  = 62
	markPad = 4
)

func drawTicTacToe(c *display.Canvas, s console.Snapshot) {
	g := s.TicTacToe

	for i := 1; i < tictactoe.Size; i++ {
		c.VLine(boardX+i*cellPx, boardY, boardPx, display.On)
		c.HLine(boardX, boardY+i*cellPx, boardPx, display.On)
	}

	for row := range g.Board {
		for col, m := range g.Board[row] {
			drawMark(c, row, col, m)
		}
	}

	if g.Over() {
		if g.HasLine {
			x0, y0 := cellCenter(g.WinLine[0])
			x1, y1 := cellCenter(g.WinLine[tictactoe.Size-1])
			c.Line(x0, y0, x1, y1, display.On)
		}
	} else {
		x, y := cellOrigin(g.Cursor)
		c.Rect(core.NewRect(x+1, y+1, cellPx-1, cellPx-1), display.Invert)
	}

	ctl := s.Controls
	if g.Over() {
		c.Text(panelX, boardY, g.Outcome.String(), 1, display.On)
		c.Text(panelX, boardY+20, shortAny(ctl.MatchReset)+":new", 1, display.On)
		c.Text(panelX, boardY+32, shortAny(ctl.MatchMenu)+":menu", 1, display.On)
		return
	}
	c.Text(panelX, boardY, "Turn "+g.Turn.String(), 1, display.On)
	c.Text(panelX, boardY+20, short(ctl.Place)+":place", 1, display.On)
	if ctl.MatchPause.Bound() {
		c.Text(panelX, boardY+32, short(ctl.MatchPause)+":pause", 1, display.On)
	}
}

func cellOrigin(cell tictactoe.Cell) (int, int) {
	return boardX + cell.Col*cellPx, boardY + cell.Row*cellPx
}

func cellCenter(cell tictactoe.Cell) (int, int) {
	x, y := cellOrigin(cell)
	return x + cellPx/2, y + cellPx/2
}

func drawMark(c *display.Canvas, row, col int, m tictactoe.Mark) {
	x, y := cellOrigin(tictactoe.Cell{Row: row, Col: col})
	switch m {
	case tictactoe.X:
		c.Line(x+markPad, y+markPad, x+cellPx-markPad, y+cellPx-markPad, display.On)
		c.Line(x+markPad, y+cellPx-markPad, x+cellPx-markPad, y+markPad, display.On)
	case tictactoe.O:
		cx, cy := cellCenter(tictactoe.Cell{Row: row, Col: col})
		c.Circle(cx, cy, cellPx/2-markPad, display.On)
	}
}
