package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab  key.Binding
	PrevTab  key.Binding
	Setup    key.Binding
	Visual   key.Binding
	Metrics  key.Binding
	NextItem key.Binding
	PrevItem key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Cancel   key.Binding
	Details  key.Binding
	Reveal   key.Binding
	Copy     key.Binding
	Regen    key.Binding
	Activity key.Binding
	Close    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextTab: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "prev tab"),
		),
		Setup: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "setup"),
		),
		Visual: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "visualization"),
		),
		Metrics: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "security metrics"),
		),
		NextItem: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevItem: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "cancel exchange"),
		),
		Details: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "view details"),
		),
		Reveal: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "show/hide key"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy key"),
		),
		Regen: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "regenerate key"),
		),
		Activity: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "activity pane"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextItem, k.Select, k.Setup, k.Visual, k.Metrics, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Setup, k.Visual, k.Metrics, k.NextTab, k.PrevTab},
		{k.NextItem, k.PrevItem, k.Up, k.Down, k.Select},
		{k.Cancel, k.Details, k.Close},
		{k.Reveal, k.Copy, k.Regen, k.Activity},
		{k.Help, k.Quit},
	}
}
