package headless

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pocket-console/internal/config"
	"github.com/vovakirdan/pocket-console/internal/console"
	"github.com/vovakirdan/pocket-console/internal/games/tictactoe"
	"github.com/vovakirdan/pocket-console/internal/render"
)

const placeCenter = `
steps:
  - hold: [white]
  - {}
  - hold: [blue]
  - {}
  - hold: [yellow, blue]
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(placeCenter))
	require.NoError(t, err)
	assert.Len(t, s.Steps, 5)
	assert.Equal(t, 5, s.TotalTicks())

	tests := []struct {
		name string
		yaml string
	}{
		{"unknown button", "steps:\n  - hold: [green]\n"},
		{"unknown direction", "steps:\n  - x: up\n"},
		{"negative ticks", "steps:\n  - ticks: -1\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tc.yaml))
			assert.ErrorIs(t, err, ErrBadScript)
		})
	}

	_, err = ParseScript([]byte("steps: [\n"))
	assert.Error(t, err)
}

func TestRunPlacesAMark(t *testing.T) {
	// Given: the classic device and a script that opens TicTacToe and places
	s, err := ParseScript([]byte(placeCenter))
	require.NoError(t, err)
	r := NewRunner(config.DefaultClassic(), render.Frame, 1, nil)

	// When: the script runs
	res, err := r.Run(context.Background(), s)

	// Then: X owns the center cell and every tick presented a frame
	require.NoError(t, err)
	assert.Equal(t, console.ModeOf(console.KindTicTacToe), res.Snapshot.Mode)
	assert.Equal(t, tictactoe.X, res.Snapshot.TicTacToe.Board[1][1])
	assert.Equal(t, tictactoe.O, res.Snapshot.TicTacToe.Turn)
	assert.Equal(t, uint64(5), res.Ticks)
	assert.Equal(t, 6, res.Frames, "boot frame plus one per tick")
	assert.Positive(t, res.Frame.Count())
}

func TestRunIsDeterministic(t *testing.T) {
	s := Script{Steps: []Step{
		{Hold: []string{"red"}},
		{Ticks: 30},
	}}
	r := NewRunner(config.DefaultBaseline(), render.Frame, 7, nil)

	a, err := r.Run(context.Background(), s)
	require.NoError(t, err)
	b, err := r.Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, a.Frame.String(), b.Frame.String())
	assert.Equal(t, console.ModeOf(console.KindRoboDodge), a.Snapshot.Mode)
	assert.Equal(t, a.Snapshot.RoboDodge, b.Snapshot.RoboDodge)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(config.DefaultClassic(), render.Frame, 1, nil).Run(ctx, Script{Steps: []Step{{}}})

	assert.ErrorIs(t, err, context.Canceled)
}
