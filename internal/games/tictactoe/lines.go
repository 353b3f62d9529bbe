package tictactoe

// lines lists every winning line in scan order: rows, columns, diagonals.
var lines = [8][Size]Cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Evaluate scans the board for three equal marks. The first complete line
// in scan order decides the winner; a full board without one is a draw.
// It also returns the index of the winning line, or -1.
func Evaluate(b Board) (Outcome, int) {
	for i, l := range lines {
		m := b[l[0].Row][l[0].Col]
		if m == Empty {
			continue
		}
		if b[l[1].Row][l[1].Col] == m && b[l[2].Row][l[2].Col] == m {
			if m == X {
				return XWins, i
			}
			return OWins, i
		}
	}

	for _, row := range b {
		for _, m := range row {
			if m == Empty {
				return InProgress, -1
			}
		}
	}
	return Draw, -1
}
