package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// Base contains the navigation and system bindings every jobslots TUI
// shares. Screens embed it and add their own actions.
type Base struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	Search      key.Binding
	ClearSearch key.Binding

	Help key.Binding
	Quit key.Binding
}

// NewBase returns the default vim-style bindings.
func NewBase() Base {
	return Base{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line footer.
func (b Base) ShortHelp() []key.Binding {
	return []key.Binding{b.Search, b.Help, b.Quit}
}

// Sections groups the base bindings for the full help view.
func (b Base) Sections() []Section {
	return []Section{
		NavigationSection(b.Up, b.Down, b.PageUp, b.PageDown, b.Top, b.Bottom),
		SearchSection(b.Search, b.ClearSearch),
		SystemSection(b.Help, b.Quit),
	}
}
