package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/jobslots/tui/keymap"
	"github.com/grovetools/jobslots/tui/theme"
)

// KeyMap is what the help component needs from a screen's keymap.
type KeyMap interface {
	keymap.SectionedKeyMap
	ShortHelp() []key.Binding
}

// Model is an embeddable help component with a one-line footer and a
// scrollable full view.
type Model struct {
	Keys    KeyMap
	ShowAll bool
	Width   int
	Height  int
	Theme   *theme.Theme
	Title   string

	viewport viewport.Model
}

// New creates a help model for keys.
func New(keys KeyMap) Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	return Model{
		Keys:     keys,
		Theme:    theme.DefaultTheme,
		viewport: vp,
	}
}

// Update scrolls the full view. Closing it is left to the owner, which
// knows its own help and quit bindings.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if m.ShowAll {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View renders either the footer or the full view.
func (m Model) View() string {
	if m.ShowAll {
		content := m.viewport.View()
		if m.viewport.TotalLineCount() > m.viewport.Height {
			indicator := "↕ more"
			if m.viewport.AtTop() {
				indicator = "↓ more"
			} else if m.viewport.AtBottom() {
				indicator = "↑ more"
			}
			content = lipgloss.JoinVertical(lipgloss.Right, content,
				m.Theme.Muted.Align(lipgloss.Right).Width(m.viewport.Width).Render(indicator))
		}
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
	}
	return m.viewShort()
}

func (m Model) viewShort() string {
	if m.Keys == nil {
		return ""
	}
	var pairs []string
	for _, binding := range m.Keys.ShortHelp() {
		if !binding.Enabled() {
			continue
		}
		h := binding.Help()
		if h.Key == "" || h.Desc == "" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s %s",
			m.Theme.Highlight.Render(h.Key),
			m.Theme.Muted.Render(h.Desc),
		))
	}
	return strings.Join(pairs, m.Theme.Muted.Render(" • "))
}

// Toggle switches between the footer and the full view.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.setViewportContent()
		m.viewport.GotoTop()
	}
}

// SetSize sets the dimensions of the full view.
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	if m.ShowAll {
		m.setViewportContent()
	}
}

func (m *Model) setViewportContent() {
	const verticalMargin = 4

	var blocks []string
	if m.Keys != nil {
		for _, section := range m.Keys.Sections() {
			if block := m.renderSection(section); block != "" {
				blocks = append(blocks, block)
			}
		}
	}

	title := m.Title
	if title == "" {
		title = "Help"
	}
	body := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.Theme.Highlight.MarginBottom(1).Render(title),
		body,
	)

	m.viewport.SetContent(content)
	m.viewport.Width = lipgloss.Width(content)
	m.viewport.Height = m.Height - verticalMargin - 1
}

func (m *Model) renderSection(section keymap.Section) string {
	keyStyle := m.Theme.Info.Bold(true)
	table := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})

	rows := 0
	for _, binding := range section.Bindings {
		if !binding.Enabled() {
			continue
		}
		h := binding.Help()
		if h.Key == "" || h.Desc == "" {
			continue
		}
		table = table.Row(keyStyle.Render(h.Key), m.Theme.Muted.Italic(true).Render(h.Desc))
		rows++
	}
	if rows == 0 {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Colors.Border).
		Padding(0, 1).
		MarginBottom(1)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.Theme.Accent.Italic(true).Render(section.Name),
		table.String(),
	))
}
