package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/splitjoin/internal/core"
)

// KeyMap holds the game's key bindings. It implements help.KeyMap.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Primary    key.Binding
	Anchor     key.Binding
	Rect       key.Binding
	Mode       key.Binding
	Restart    key.Binding
	Yes        key.Binding
	No         key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings: arrows, WASD and vim keys
// all move the cursor.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d", "right")),
		Primary:    key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "split/join")),
		Anchor:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "anchor")),
		Rect:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "rectangle")),
		Mode:       key.NewBinding(key.WithKeys("e", "tab"), key.WithHelp("e", "play/edit")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Yes:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		No:         key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Primary, k.Mode, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Primary, k.Anchor, k.Rect, k.Mode},
		{k.Restart, k.Yes, k.No},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for keys the game does not handle.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Primary, core.ActionPrimary},
		{k.Anchor, core.ActionAnchor},
		{k.Rect, core.ActionRect},
		{k.Mode, core.ActionMode},
		{k.Restart, core.ActionRestart},
		{k.Yes, core.ActionYes},
		{k.No, core.ActionNo},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}
