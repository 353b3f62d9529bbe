package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/pocket-console/internal/config"
	"github.com/vovakirdan/pocket-console/internal/core"
)

// Line is what one key drives: one or two buttons, or a stick deflection.
// Two buttons on one key stand in for a chord the keyboard cannot press
// reliably.
type Line struct {
	Key     key.Binding
	Buttons []core.Button
	Axis    core.Axis
	Dir     core.Direction // DirNeutral for button lines
}

// IsAxis reports whether the line deflects the stick.
func (l Line) IsAxis() bool {
	return l.Dir != core.DirNeutral
}

// KeyMap defines the key bindings of the emulator.
type KeyMap struct {
	Lines []Line
	Copy  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func button(keys []string, help, desc string, bs ...core.Button) Line {
	return Line{
		Key:     key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc)),
		Buttons: bs,
	}
}

func stick(keys []string, help, desc string, a core.Axis, dir core.Direction) Line {
	return Line{
		Key:  key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc)),
		Axis: a,
		Dir:  dir,
	}
}

// DefaultKeyMap returns the bindings for a control scheme. Arrows press the
// four buttons on the button scheme and tilt the stick on the joystick
// scheme.
func DefaultKeyMap(steering config.Steering) KeyMap {
	km := KeyMap{
		Copy: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy frame")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}

	switch steering {
	case config.SteeringJoystick:
		km.Lines = []Line{
			stick([]string{"up", "k"}, "↑/k", "stick up", core.AxisY, core.DirLow),
			stick([]string{"down", "j"}, "↓/j", "stick down", core.AxisY, core.DirHigh),
			stick([]string{"left", "h"}, "←/h", "stick left", core.AxisX, core.DirLow),
			stick([]string{"right", "l"}, "→/l", "stick right", core.AxisX, core.DirHigh),
			button([]string{" ", "enter", "r"}, "space/r", "red", core.ButtonRed),
			button([]string{"w"}, "w", "white", core.ButtonWhite),
			button([]string{"y"}, "y", "yellow", core.ButtonYellow),
			button([]string{"b", "x"}, "b/x", "blue", core.ButtonBlue),
			button([]string{"s"}, "s", "stick push", core.ButtonStick),
			button([]string{"p", "esc"}, "p", "white+red", core.ButtonWhite, core.ButtonRed),
		}
	default:
		km.Lines = []Line{
			button([]string{"up", " ", "r"}, "↑/r", "red", core.ButtonRed),
			button([]string{"down", "w"}, "↓/w", "white", core.ButtonWhite),
			button([]string{"left", "y"}, "←/y", "yellow", core.ButtonYellow),
			button([]string{"right", "b"}, "→/b", "blue", core.ButtonBlue),
			button([]string{"s"}, "s", "stick push", core.ButtonStick),
			button([]string{"enter"}, "enter", "yellow+blue", core.ButtonYellow, core.ButtonBlue),
			button([]string{"p", "esc"}, "p", "white+red", core.ButtonWhite, core.ButtonRed),
		}
	}
	return km
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Copy, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	var col []key.Binding
	var cols [][]key.Binding
	for _, l := range k.Lines {
		col = append(col, l.Key)
		if len(col) == 4 {
			cols = append(cols, col)
			col = nil
		}
	}
	if len(col) > 0 {
		cols = append(cols, col)
	}
	return append(cols, []key.Binding{k.Copy, k.Help, k.Quit})
}
