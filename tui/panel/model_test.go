package panel

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/jobslots/pkg/catalog"
	"github.com/grovetools/jobslots/pkg/jobslots"
	"github.com/grovetools/jobslots/pkg/session"
	"github.com/grovetools/jobslots/pkg/slots"
	"github.com/grovetools/jobslots/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestModel(t *testing.T, debug bool) (Model, *session.Session) {
	t.Helper()

	cat, loc := testutil.StationCatalog(t)
	vm := jobslots.New(cat, loc, jobslots.Options{
		DepartmentRanking: testutil.StationRanking,
		Locale:            language.English,
		Logger:            testutil.QuietLogger(),
	})

	state := testutil.State(map[catalog.JobID]slots.SlotCount{
		"Captain":         1,
		"Warden":          1,
		"SecurityOfficer": 4,
		"Detective":       0,
		"Cook":            slots.Unlimited,
		"Bartender":       2,
	}, "Detective")
	state.Debug = debug
	sess := session.New(state).WithLogger(testutil.QuietLogger())

	m := New(vm, Options{Apply: sess.Apply, InitState: sess.State()})
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	return m, sess
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func keyMsg(s string) tea.Msg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and runs any returned command, feeding its message back.
func press(t *testing.T, m Model, s string) Model {
	t.Helper()
	next, cmd := m.Update(keyMsg(s))
	m = next.(Model)
	if cmd != nil {
		if msg := cmd(); msg != nil {
			switch msg.(type) {
			case StateMsg, ErrMsg:
				m = update(t, m, msg)
			}
		}
	}
	return m
}

func TestViewShowsSectionsInOrder(t *testing.T) {
	m, _ := newTestModel(t, false)
	view := m.View()

	command := strings.Index(view, "Command")
	security := strings.Index(view, "Security")
	service := strings.Index(view, "Service")
	require.True(t, command >= 0 && security >= 0 && service >= 0, view)
	assert.Less(t, command, security)
	assert.Less(t, security, service)

	assert.Contains(t, view, "∞", "unlimited slots render as infinity")
	assert.NotContains(t, view, "Clown")
	assert.Less(t, strings.Index(view, "Warden"), strings.Index(view, "Detective"))
}

func TestCursorNavigation(t *testing.T) {
	m, _ := newTestModel(t, false)

	id, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, catalog.JobID("Captain"), id)

	m = press(t, m, "j")
	id, _ = m.Selected()
	assert.Equal(t, catalog.JobID("Warden"), id)

	m = press(t, m, "G")
	id, _ = m.Selected()
	assert.Equal(t, catalog.JobID("Cook"), id)

	m = press(t, m, "k")
	m = press(t, m, "g")
	id, _ = m.Selected()
	assert.Equal(t, catalog.JobID("Captain"), id)
}

func TestAdjustRoundTrip(t *testing.T) {
	m, sess := newTestModel(t, false)

	m = press(t, m, "j") // Warden
	m = press(t, m, "+")
	assert.Equal(t, slots.SlotCount(2), sess.State().Jobs["Warden"])
	assert.Equal(t, slots.SlotCount(2), m.vm.State().Jobs["Warden"], "panel received the new state")

	m = press(t, m, "-")
	m = press(t, m, "-")
	assert.Equal(t, slots.SlotCount(0), sess.State().Jobs["Warden"])

	m = press(t, m, "u")
	assert.Equal(t, slots.Unlimited, sess.State().Jobs["Warden"])

	id, _ := m.Selected()
	assert.Equal(t, catalog.JobID("Warden"), id, "selection survives state updates")
}

func TestDebugControls(t *testing.T) {
	m, sess := newTestModel(t, false)
	m = press(t, m, "j")

	_, cmd := m.Update(keyMsg("b"))
	assert.Nil(t, cmd, "debug keys are inert without debug controls")
	assert.NotContains(t, m.View(), "debug")

	m, sess = newTestModel(t, true)
	m = press(t, m, "j")
	m = press(t, m, "b")
	assert.True(t, sess.State().IsBlacklisted("Warden"))
	assert.Contains(t, m.View(), "debug")
}

func TestSearchFiltersRows(t *testing.T) {
	m, _ := newTestModel(t, false)

	m = press(t, m, "/")
	for _, r := range "COO" {
		m = press(t, m, string(r))
	}
	assert.Equal(t, "COO", m.vm.Search())

	view := m.View()
	assert.Contains(t, view, "Cook")
	assert.NotContains(t, view, "Warden")
	assert.NotContains(t, view, "Command", "sections without matches are hidden")

	id, _ := m.Selected()
	assert.Equal(t, catalog.JobID("Cook"), id)

	// Typing while searching must not adjust slots.
	m = press(t, m, "enter")
	assert.False(t, m.searching)
	assert.Equal(t, "COO", m.vm.Search())

	m = press(t, m, "esc")
	assert.Equal(t, "", m.vm.Search())
	assert.Contains(t, m.View(), "Warden")
}

func TestSearchWithoutMatches(t *testing.T) {
	m, _ := newTestModel(t, false)
	m = press(t, m, "/")
	for _, r := range "zzz" {
		m = press(t, m, string(r))
	}
	assert.Contains(t, m.View(), `No jobs match "zzz"`)

	_, ok := m.Selected()
	assert.False(t, ok)

	_, cmd := m.Update(keyMsg("esc"))
	assert.Nil(t, cmd)
}

func TestErrMsgShowsStatus(t *testing.T) {
	m, _ := newTestModel(t, false)
	m = update(t, m, ErrMsg{
		Intent: slots.AdjustmentIntent{Job: "Warden", Kind: slots.Increase},
		Err:    assert.AnError,
	})
	assert.Contains(t, m.View(), assert.AnError.Error())

	m = press(t, m, "j")
	assert.NotContains(t, m.View(), assert.AnError.Error())
}

func TestHelpAndQuit(t *testing.T) {
	m, _ := newTestModel(t, true)

	m = press(t, m, "?")
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "toggle blacklist")
	m = press(t, m, "?")
	assert.False(t, m.help.ShowAll)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestStateMsgReplacesState(t *testing.T) {
	m, _ := newTestModel(t, false)
	m = update(t, m, StateMsg{State: testutil.State(map[catalog.JobID]slots.SlotCount{"Cook": 3})})

	view := m.View()
	assert.Contains(t, view, "Cook")
	assert.NotContains(t, view, "Warden")

	id, _ := m.Selected()
	assert.Equal(t, catalog.JobID("Cook"), id)
}
