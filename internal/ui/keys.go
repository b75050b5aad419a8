package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// browseKeys is the keyboard surface of the achievement list.
type browseKeys struct {
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Toggle      key.Binding
	SelectAll   key.Binding
	DeselectAll key.Binding
	SortPercent key.Binding
	SortName    key.Binding
	ToggleOrder key.Binding
	Commit      key.Binding
	Search      key.Binding
	SwitchApp   key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

func newBrowseKeys() browseKeys {
	return browseKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+p"),
			key.WithHelp("pgup/^p", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+n"),
			key.WithHelp("pgdn/^n", "page down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "enable all"),
		),
		DeselectAll: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "disable all"),
		),
		SortPercent: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "sort by global %"),
		),
		SortName: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "sort by name"),
		),
		ToggleOrder: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "order"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "process"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		SwitchApp: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "switch app"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Commit, k.Search, k.SwitchApp, k.Help, k.Quit}
}

func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.PageUp, k.PageDown, k.Search},
		{k.Toggle, k.SelectAll, k.DeselectAll, k.Commit},
		{k.SortPercent, k.SortName, k.ToggleOrder},
		{k.SwitchApp, k.Help, k.Quit},
	}
}

// editKeys is the keyboard surface of the app id prompt.
type editKeys struct {
	Type      key.Binding
	Clear     key.Binding
	Delete    key.Binding
	Load      key.Binding
	Cancel    key.Binding
	ForceQuit key.Binding
}

func newEditKeys() editKeys {
	return editKeys{
		Type: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "type"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "d"),
			key.WithHelp("c/d", "clear"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		Load: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "cancel"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

func (k editKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Type, k.Clear, k.Delete, k.Load, k.Cancel}
}

func (k editKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// searchKeys is the keyboard surface of the incremental search prompt.
type searchKeys struct {
	Accept    key.Binding
	Cancel    key.Binding
	ForceQuit key.Binding
}

func newSearchKeys() searchKeys {
	return searchKeys{
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "keep position"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

func (k searchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Cancel}
}

func (k searchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
