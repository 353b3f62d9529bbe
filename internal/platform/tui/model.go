package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-console/internal/config"
	"github.com/vovakirdan/pocket-console/internal/console"
	"github.com/vovakirdan/pocket-console/internal/hal"
	"github.com/vovakirdan/pocket-console/internal/storage"
)

// statusTTL is how long a status message stays on screen.
const statusTTL = 2 * time.Second

// Options wires the emulator to a booted device.
type Options struct {
	Device *console.Device
	Pins   *hal.VirtualPins
	Screen *Screen
	Store  *storage.Store
	Rules  config.Ruleset
	Logger *log.Logger
}

// Model is the Bubble Tea model of the device emulator.
type Model struct {
	device *console.Device
	screen *Screen
	rules  config.Ruleset
	logger *log.Logger
	lines  *holder
	keys   KeyMap
	help   help.Model
	board  Scoreboard

	lastMode    console.Mode
	status      string
	statusUntil time.Time
	width       int
	height      int
	quitting    bool
}

// NewModel creates the emulator model.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		device:   opts.Device,
		screen:   opts.Screen,
		rules:    opts.Rules,
		logger:   logger,
		lines:    newHolder(opts.Pins, defaultHold),
		keys:     DefaultKeyMap(opts.Rules.Steering),
		help:     help.New(),
		board:    NewScoreboard(opts.Store),
		lastMode: opts.Device.Machine().Mode(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.device.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey drives the input lines.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Copy):
		m.copyFrame(now)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	for _, l := range m.keys.Lines {
		if key.Matches(msg, l.Key) {
			m.lines.press(l, now)
		}
	}
	return m, nil
}

// handleTick releases stale lines and polls the device.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.lines.expire(now)

	if _, err := m.device.Step(now); err != nil {
		m.logger.Warn("step failed", "error", err)
	}

	if mode := m.device.Machine().Mode(); mode != m.lastMode {
		m.lastMode = mode
		m.board.Refresh()
	}

	return m, tickCmd(m.device.Interval())
}

// copyFrame puts the current frame on the clipboard as block art.
func (m *Model) copyFrame(now time.Time) {
	if err := clipboard.WriteAll(m.screen.Frame().Blocks()); err != nil {
		m.logger.Warn("clipboard unavailable", "error", err)
		m.setStatus("clipboard unavailable", now)
		return
	}
	m.setStatus("frame copied", now)
}

func (m *Model) setStatus(s string, now time.Time) {
	m.status = s
	m.statusUntil = now.Add(statusTTL)
}

// View renders the bezel, status line, help and sidebar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := fmt.Sprintf("%s · %s", m.rules.Name, m.lastMode)
	if m.status != "" && time.Now().Before(m.statusUntil) {
		status += " · " + m.status
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		statusStyle.Render(status),
		RenderScreen(m.screen.Frame()),
		m.help.View(m.keys),
	)
	if m.width >= minWidthForSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.board.View())
	}
	return body
}

// Run starts the Bubble Tea program. The device must already be booted.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
