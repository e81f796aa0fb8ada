// Package panel is the interactive job slots panel. It renders the view
// model's sections and turns key presses into adjustment requests on rows.
package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/jobslots/pkg/catalog"
	"github.com/grovetools/jobslots/pkg/jobslots"
	"github.com/grovetools/jobslots/pkg/slots"
	"github.com/grovetools/jobslots/tui/components"
	"github.com/grovetools/jobslots/tui/components/help"
	"github.com/grovetools/jobslots/tui/keymap"
	"github.com/grovetools/jobslots/tui/theme"
)

// ApplyFunc hands an intent to the session layer and returns the resulting
// state.
type ApplyFunc func(slots.AdjustmentIntent) (*slots.ConsoleState, error)

// Options configures a panel Model.
type Options struct {
	Title     string
	Keys      keymap.Overrides
	Apply     ApplyFunc
	Theme     *theme.Theme
	InitState *slots.ConsoleState
}

// intentQueue collects intents raised by rows during one Update. It is
// shared by pointer because the model is copied on every Update.
type intentQueue struct {
	pending []slots.AdjustmentIntent
}

func (q *intentQueue) drain() []slots.AdjustmentIntent {
	out := q.pending
	q.pending = nil
	return out
}

// Model is the bubbletea model of the panel.
type Model struct {
	vm      *jobslots.ViewModel
	keys    KeyMap
	theme   *theme.Theme
	title   string
	apply   ApplyFunc
	intents *intentQueue

	search    textinput.Model
	searching bool
	viewport  viewport.Model
	help      help.Model

	cursor   int
	selected catalog.JobID
	width    int
	height   int
	status   string
	ready    bool
}

// New builds a panel over vm. If opts.InitState is set it is applied
// immediately.
func New(vm *jobslots.ViewModel, opts Options) Model {
	t := opts.Theme
	if t == nil {
		t = theme.DefaultTheme
	}
	title := opts.Title
	if title == "" {
		title = "Job Slots"
	}

	ti := textinput.New()
	ti.Prompt = theme.IconFilter + " "
	ti.Placeholder = "search jobs"
	ti.PromptStyle = t.Muted
	ti.TextStyle = t.Input
	ti.PlaceholderStyle = t.Placeholder

	keys := NewKeyMap(opts.Keys)
	q := &intentQueue{}
	vm.OnAdjustRequested(func(job catalog.JobID, kind slots.AdjustmentKind) {
		q.pending = append(q.pending, slots.AdjustmentIntent{Job: job, Kind: kind})
	})

	m := Model{
		vm:       vm,
		keys:     keys,
		theme:    t,
		title:    title,
		apply:    opts.Apply,
		intents:  q,
		search:   ti,
		viewport: viewport.New(0, 0),
		help:     help.New(keys),
	}
	if opts.InitState != nil {
		m.applyState(opts.InitState)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.ready = true
		m.layout()
		return m, nil

	case StateMsg:
		m.applyState(msg.State)
		return m, nil

	case ErrMsg:
		m.status = fmt.Sprintf("%s %s: %v", theme.IconError, msg.Intent, msg.Err)
		return m, nil

	case tea.KeyMsg:
		if m.help.ShowAll {
			if key.Matches(msg, m.keys.Help, m.keys.Quit, m.keys.ClearSearch) {
				m.help.Toggle()
				return m, nil
			}
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.search.SetValue("")
		m.endSearch()
		return m, nil
	case tea.KeyEnter:
		m.endSearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.vm.Search() {
		m.vm.ApplySearch(m.search.Value())
		m.syncCursor()
		m.layout()
	}
	return m, cmd
}

func (m *Model) endSearch() {
	m.searching = false
	m.search.Blur()
	m.vm.ApplySearch(m.search.Value())
	m.syncCursor()
	m.layout()
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.vm.VisibleRows()
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.ClearSearch):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.endSearch()
		}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, rows)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, rows)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.pageSize(), rows)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.pageSize(), rows)
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(rows), rows)
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(rows), rows)
	case key.Matches(msg, m.keys.Increase):
		return m, m.adjust(rows, slots.Increase)
	case key.Matches(msg, m.keys.Decrease):
		return m, m.adjust(rows, slots.Decrease)
	case key.Matches(msg, m.keys.SetUnlimited):
		return m, m.adjust(rows, slots.SetUnlimited)
	case key.Matches(msg, m.keys.SetFinite):
		return m, m.adjust(rows, slots.SetFinite)
	case key.Matches(msg, m.keys.ToggleBlacklist):
		return m, m.adjust(rows, slots.ToggleBlacklist)
	}
	m.layout()
	return m, nil
}

// adjust raises kind on the selected row and turns the queued intents into
// commands that run against the session layer.
func (m *Model) adjust(rows []*jobslots.JobRow, kind slots.AdjustmentKind) tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil
	}
	if kind.DebugOnly() && !m.vm.DebugControls() {
		return nil
	}
	rows[m.cursor].Adjust(kind)

	var cmds []tea.Cmd
	for _, intent := range m.intents.drain() {
		if cmd := m.applyCmd(intent); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (m Model) applyCmd(intent slots.AdjustmentIntent) tea.Cmd {
	apply := m.apply
	if apply == nil {
		return nil
	}
	return func() tea.Msg {
		state, err := apply(intent)
		if err != nil {
			return ErrMsg{Intent: intent, Err: err}
		}
		return StateMsg{State: state}
	}
}

func (m *Model) applyState(state *slots.ConsoleState) {
	m.vm.ApplyState(state)
	m.keys.setDebug(m.vm.DebugControls())
	m.help.Keys = m.keys
	m.syncCursor()
	m.layout()
}

func (m *Model) moveCursor(delta int, rows []*jobslots.JobRow) {
	if len(rows) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	m.selected = rows[m.cursor].ID()
}

// syncCursor keeps the selection on the same job across rebuilds and
// clamps it when that job is no longer visible.
func (m *Model) syncCursor() {
	rows := m.vm.VisibleRows()
	for i, r := range rows {
		if r.ID() == m.selected {
			m.cursor = i
			return
		}
	}
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if len(rows) > 0 {
		m.selected = rows[m.cursor].ID()
	} else {
		m.selected = ""
	}
}

// Selected returns the job under the cursor, if any.
func (m Model) Selected() (catalog.JobID, bool) {
	return m.selected, m.selected != ""
}

func (m Model) pageSize() int {
	if m.viewport.Height > 1 {
		return m.viewport.Height - 1
	}
	return 1
}

const chromeHeight = 4 // header, search line, divider, footer

func (m *Model) layout() {
	if !m.ready {
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = m.height - chromeHeight
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}

	body, cursorLine := m.renderBody()
	m.viewport.SetContent(body)

	if cursorLine < m.viewport.YOffset {
		m.viewport.SetYOffset(cursorLine)
	} else if cursorLine >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(cursorLine - m.viewport.Height + 1)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.help.ShowAll {
		return m.help.View()
	}

	header := components.RenderHeader(m.title, m.subtitle())
	searchLine := m.search.View()

	var body string
	if m.ready {
		body = m.viewport.View()
	} else {
		body, _ = m.renderBody()
	}

	footer := m.help.View()
	if m.status != "" {
		footer = m.theme.Error.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		searchLine,
		components.RenderDivider(m.width),
		body,
		footer,
	)
}

func (m Model) subtitle() string {
	visible := len(m.vm.VisibleRows())
	parts := []string{fmt.Sprintf("%d jobs", visible)}
	if m.vm.DebugControls() {
		parts = append(parts, m.theme.DebugBadge.Render(theme.IconDebug+" debug"))
	}
	return strings.Join(parts, "  ")
}

// renderBody draws the visible sections and returns the line the cursor is
// on.
func (m Model) renderBody() (string, int) {
	sections := m.vm.Sections()
	nameWidth := 0
	for _, r := range m.vm.VisibleRows() {
		if w := lipgloss.Width(r.Name()); w > nameWidth {
			nameWidth = w
		}
	}

	var lines []string
	cursorLine := 0
	index := 0
	for _, s := range sections {
		if !s.Visible() {
			continue
		}
		lines = append(lines, m.theme.SectionHeader(s.Color().Hex()).Render(s.Title()))
		for _, r := range s.VisibleRows() {
			selected := index == m.cursor
			if selected {
				cursorLine = len(lines)
			}
			lines = append(lines, m.renderRow(r, selected, nameWidth))
			index++
		}
	}

	if len(lines) == 0 {
		msg := "No jobs available"
		if m.vm.Search() != "" {
			msg = fmt.Sprintf("No jobs match %q", m.vm.Search())
		}
		return m.theme.Muted.Render(msg), 0
	}
	return strings.Join(lines, "\n"), cursorLine
}

func (m Model) renderRow(r *jobslots.JobRow, selected bool, nameWidth int) string {
	marker := "  "
	if selected {
		marker = m.theme.Highlight.Render(theme.IconArrow) + " "
	}

	nameStyle := lipgloss.NewStyle().Width(nameWidth)
	if r.Blacklisted() {
		nameStyle = m.theme.Blacklisted.Width(nameWidth)
	}
	name := nameStyle.Render(r.Name())

	var count string
	if r.Slots().IsUnlimited() {
		count = m.theme.Unlimited.Render(theme.IconUnlimited)
	} else {
		count = m.theme.SlotCount.Render(r.Slots().String())
	}

	line := fmt.Sprintf("%s%s  %s", marker, name, count)
	if r.Blacklisted() {
		line += "  " + m.theme.Error.Render(theme.IconBlacklisted)
	}
	if selected {
		line = m.theme.Selected.Render(line)
	}
	return line
}
