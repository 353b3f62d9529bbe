package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocket-console/internal/console"
	"github.com/vovakirdan/pocket-console/internal/games/tictactoe"
	"github.com/vovakirdan/pocket-console/internal/storage"
)

// Sidebar layout constants
const (
	minWidthForSidebar = MinWidth + sidebarWidth + 2
	sidebarWidth       = 24
	maxScores          = 10
)

// Scoreboard is the session score sidebar: the best RoboDodge runs and the
// TicTacToe tally since power-on.
type Scoreboard struct {
	store *storage.Store
	table table.Model
	stats storage.GameStats
	tally storage.Tally
	last  []storage.MatchEntry
	err   error
}

// NewScoreboard creates a sidebar reading from store. A nil store shows an
// empty board.
func NewScoreboard(store *storage.Store) Scoreboard {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "RoboDodge", Width: sidebarWidth - 7},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(maxScores+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	sb := Scoreboard{store: store, table: t}
	sb.Refresh()
	return sb
}

// Refresh reloads the board from the store.
func (sb *Scoreboard) Refresh() {
	if sb.store == nil {
		return
	}

	scores, err := sb.store.TopScores(console.GameRoboDodge, maxScores)
	if err != nil {
		sb.err = err
		return
	}
	rows := make([]table.Row, 0, len(scores))
	for i, e := range scores {
		rows = append(rows, table.Row{strconv.Itoa(i + 1), strconv.Itoa(e.Score)})
	}
	sb.table.SetRows(rows)

	stats, err := sb.store.GetGameStats(console.GameRoboDodge)
	if err != nil {
		sb.err = err
		return
	}
	sb.stats = *stats

	sb.tally, err = sb.store.MatchTally(
		tictactoe.XWins.String(), tictactoe.OWins.String(), tictactoe.Draw.String(),
	)
	if err != nil {
		sb.err = err
		return
	}
	sb.last, sb.err = sb.store.RecentMatches(1)
}

// View renders the sidebar.
func (sb Scoreboard) View() string {
	title := titleStyle.Render("Session")
	if sb.err != nil {
		return lipgloss.JoinVertical(lipgloss.Left, title, errorStyle.Render(sb.err.Error()))
	}
	runs := fmt.Sprintf("%d runs  avg %.1f", sb.stats.GamesCount, sb.stats.AvgScore)
	tally := fmt.Sprintf("TicTacToe\nX %d  O %d  draw %d", sb.tally.XWins, sb.tally.OWins, sb.tally.Draws)
	if len(sb.last) > 0 {
		tally += fmt.Sprintf("\nlast: %s in %d", sb.last[0].Outcome, sb.last[0].Moves)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		sb.table.View(),
		dimStyle.Render(runs),
		"",
		dimStyle.Render(tally),
	)
}
