package console

import "github.com/vovakirdan/pocket-console/internal/core"

// Action is what confirming a menu option asks the caller to do.
type Action uint8

const (
	ActionNone Action = iota
	ActionPlayRoboDodge
	ActionPlayTicTacToe
	ActionResume
	ActionRestart
	ActionExit
	ActionYes
	ActionNo
)

// MenuOption is one menu entry.
type MenuOption struct {
	Label  string
	Action Action
}

// Menu tracks a selection over a fixed list of options. Moving past either
// end is rejected; there is no wraparound.
type Menu struct {
	options  []MenuOption
	selected int
}

// NewMenu creates a menu with the first option selected.
func NewMenu(options ...MenuOption) *Menu {
	return &Menu{options: options}
}

// MainMenu lists the games.
func MainMenu() *Menu {
	return NewMenu(
		MenuOption{Label: "RoboDodge", Action: ActionPlayRoboDodge},
		MenuOption{Label: "TicTacToe", Action: ActionPlayTicTacToe},
	)
}

// PauseMenu is shown over a paused game.
func PauseMenu() *Menu {
	return NewMenu(
		MenuOption{Label: "Resume", Action: ActionResume},
		MenuOption{Label: "Restart", Action: ActionRestart},
		MenuOption{Label: "Exit", Action: ActionExit},
	)
}

// ConfirmMenu asks whether to restart.
func ConfirmMenu() *Menu {
	return NewMenu(
		MenuOption{Label: "Yes", Action: ActionYes},
		MenuOption{Label: "No", Action: ActionNo},
	)
}

// Prev moves the selection up by one.
func (m *Menu) Prev() core.Result {
	if m.selected == 0 {
		return core.Rejected
	}
	m.selected--
	return core.Accepted
}

// Next moves the selection down by one.
func (m *Menu) Next() core.Result {
	if m.selected >= len(m.options)-1 {
		return core.Rejected
	}
	m.selected++
	return core.Accepted
}

// Reset selects the first option.
func (m *Menu) Reset() {
	m.selected = 0
}

// Selected returns the index of the selected option.
func (m *Menu) Selected() int {
	return m.selected
}

// Confirm resolves the selected option to its action.
func (m *Menu) Confirm() Action {
	if len(m.options) == 0 {
		return ActionNone
	}
	return m.options[m.selected].Action
}

// Options returns the menu entries. The slice must not be modified.
func (m *Menu) Options() []MenuOption {
	return m.options
}

// View returns the read-only state a renderer needs.
func (m *Menu) View() MenuView {
	return MenuView{Options: m.options, Selected: m.selected}
}

// MenuView is a menu as seen by the renderer.
type MenuView struct {
	Options  []MenuOption
	Selected int
}
