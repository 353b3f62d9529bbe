package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenSession()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSessionsAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	_, err := a.SaveScore("robododge", 12)
	require.NoError(t, err)

	high, err := b.HighScore("robododge")
	require.NoError(t, err)
	assert.Equal(t, 0, high, "a new session starts empty")
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		_, err := store.SaveScore("robododge", s)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("other", 500)
	require.NoError(t, err)

	scores, err := store.TopScores("robododge", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)
	assert.False(t, scores[0].CreatedAt.IsZero())

	limited, err := store.TopScores("robododge", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("robododge")
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	_, _ = store.SaveScore("robododge", 7)
	_, _ = store.SaveScore("robododge", 3)

	high, err = store.HighScore("robododge")
	require.NoError(t, err)
	assert.Equal(t, 7, high)
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)
	_, _ = store.SaveScore("robododge", 2)
	_, _ = store.SaveScore("robododge", 4)

	stats, err := store.GetGameStats("robododge")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 4, stats.HighScore)
	assert.InDelta(t, 3.0, stats.AvgScore, 0.001)
}

func TestMatches(t *testing.T) {
	store := openTestStore(t)

	for _, o := range []string{"X wins", "Draw", "X wins", "O wins"} {
		_, err := store.SaveMatch(o, 7)
		require.NoError(t, err)
	}

	tally, err := store.MatchTally("X wins", "O wins", "Draw")
	require.NoError(t, err)
	assert.Equal(t, Tally{XWins: 2, OWins: 1, Draws: 1}, tally)

	recent, err := store.RecentMatches(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "O wins", recent[0].Outcome)
	assert.Equal(t, "X wins", recent[1].Outcome)
}
