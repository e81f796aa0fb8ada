package panel

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/jobslots/tui/keymap"
)

// KeyMap holds the panel bindings. Field names double as the snake_case
// override keys under `tui.keybindings.panel`.
type KeyMap struct {
	keymap.Base

	Increase     key.Binding
	Decrease     key.Binding
	SetUnlimited key.Binding

	// Debug controls
	SetFinite       key.Binding
	ToggleBlacklist key.Binding

	debug bool
}

// NewKeyMap returns the default panel bindings with overrides applied.
func NewKeyMap(overrides keymap.Overrides) KeyMap {
	km := KeyMap{
		Base: keymap.NewBase(),
		Increase: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "open slot"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "close slot"),
		),
		SetUnlimited: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unlimited"),
		),
		SetFinite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "limit slots"),
		),
		ToggleBlacklist: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle blacklist"),
		),
	}
	keymap.ApplyOverrides(&km, overrides)
	km.setDebug(false)
	return km
}

func (k *KeyMap) setDebug(on bool) {
	k.debug = on
	k.SetFinite.SetEnabled(on)
	k.ToggleBlacklist.SetEnabled(on)
}

// ShortHelp returns the footer bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increase, k.Decrease, k.SetUnlimited, k.Search, k.Help, k.Quit}
}

// Sections returns the full help sections. The debug section is omitted
// while debug controls are off.
func (k KeyMap) Sections() []keymap.Section {
	sections := []keymap.Section{
		keymap.NavigationSection(k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom),
		keymap.NewSection(keymap.SectionSlots, k.Increase, k.Decrease, k.SetUnlimited),
	}
	if k.debug {
		sections = append(sections, keymap.NewSection(keymap.SectionDebug, k.SetFinite, k.ToggleBlacklist))
	}
	return append(sections,
		keymap.SearchSection(k.Search, k.ClearSearch),
		keymap.SystemSection(k.Help, k.Quit),
	)
}
