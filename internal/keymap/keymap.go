// Package keymap translates terminal key messages to core actions.
// It centralizes key bindings so the TUI, the help footer and the Help
// screen agree on them.
package keymap

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/core"
)

// KeyMap defines the key bindings of the game.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Back    key.Binding
	Pause   key.Binding
	Undo    key.Binding
	Redo    key.Binding
	History key.Binding
	Copy    key.Binding
	Quit    key.Binding
}

// Default returns the default key bindings.
func Default() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("right/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "ctrl+z"),
			key.WithHelp("u", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "redo"),
		),
		History: key.NewBinding(
			key.WithKeys("H", "f2"),
			key.WithHelp("H", "history"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Back, k.Undo, k.Redo, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Back, k.Pause},
		{k.Undo, k.Redo, k.History, k.Copy},
		{k.Quit},
	}
}

// pairs lists bindings in match order.
func (k KeyMap) pairs() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Copy, core.ActionCopy},
		{k.History, core.ActionHistory},
		{k.Undo, core.ActionUndo},
		{k.Redo, core.ActionRedo},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Confirm, core.ActionConfirm},
		{k.Back, core.ActionBack},
		{k.Pause, core.ActionPause},
	}
}

// Action translates a key message, returning ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, p := range k.pairs() {
		if key.Matches(msg, p.binding) {
			return p.action
		}
	}
	return core.ActionNone
}

// Apply adds the action for msg to frame and returns it.
func (k KeyMap) Apply(msg tea.KeyMsg, frame *core.InputFrame) core.Action {
	a := k.Action(msg)
	if a != core.ActionNone {
		frame.Set(a)
	}
	return a
}

// Lines formats every enabled binding as "keys  description", for the
// Help screen.
func (k KeyMap) Lines() []string {
	var lines []string
	for _, group := range k.FullHelp() {
		for _, b := range group {
			if !b.Enabled() {
				continue
			}
			h := b.Help()
			lines = append(lines, fmt.Sprintf("%-8s %s", h.Key, h.Desc))
		}
	}
	return lines
}
