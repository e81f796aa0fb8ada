package jobslots

import (
	"testing"

	"github.com/grovetools/jobslots/pkg/catalog"
	"github.com/grovetools/jobslots/pkg/slots"
	"github.com/grovetools/jobslots/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type rowSnapshot struct {
	Job         catalog.JobID
	Slots       slots.SlotCount
	Blacklisted bool
	Visible     bool
}

type sectionSnapshot struct {
	ID      catalog.DepartmentID
	Visible bool
	Rows    []rowSnapshot
}

func snapshot(vm *ViewModel) []sectionSnapshot {
	var out []sectionSnapshot
	for _, s := range vm.Sections() {
		ss := sectionSnapshot{ID: s.ID(), Visible: s.Visible()}
		for _, r := range s.Rows() {
			ss.Rows = append(ss.Rows, rowSnapshot{r.ID(), r.Slots(), r.Blacklisted(), r.Visible()})
		}
		out = append(out, ss)
	}
	return out
}

func visibleJobs(vm *ViewModel) map[catalog.JobID]bool {
	out := make(map[catalog.JobID]bool)
	for _, r := range vm.VisibleRows() {
		out[r.ID()] = true
	}
	return out
}

func newStationViewModel(t *testing.T) *ViewModel {
	cat, loc := testutil.StationCatalog(t)
	return New(cat, loc, Options{
		DepartmentRanking: testutil.StationRanking,
		Locale:            language.English,
		Logger:            testutil.QuietLogger(),
	})
}

func stationState() *slots.ConsoleState {
	return testutil.State(map[catalog.JobID]slots.SlotCount{
		"Captain":         1,
		"Warden":          1,
		"SecurityOfficer": 4,
		"Detective":       1,
		"Cook":            2,
		"Bartender":       slots.Unlimited,
		"Clown":           2,
		"Ghost":           1,
	}, "Bartender")
}

func TestExampleScenario(t *testing.T) {
	jobs := []*catalog.JobDefinition{
		{ID: "Warden", DisplayName: "Warden", DisplayWeight: 10},
		{ID: "Cook", DisplayName: "Cook", DisplayWeight: 5},
	}
	depts := []*catalog.DepartmentDefinition{
		catalog.NewDepartment("Service", "Service", catalog.Color{}, []catalog.JobID{"Cook"}, nil),
		catalog.NewDepartment("Security", "Security", catalog.Color{}, []catalog.JobID{"Warden"}, nil),
	}
	cat, err := catalog.New(jobs, depts, nil)
	require.NoError(t, err)

	vm := New(cat, nil, Options{
		DepartmentRanking: []catalog.DepartmentID{"Security", "Service"},
		Logger:            testutil.QuietLogger(),
	})
	vm.ApplyState(testutil.State(map[catalog.JobID]slots.SlotCount{
		"Warden": 2,
		"Cook":   slots.Unlimited,
	}))

	assert.Equal(t, []sectionSnapshot{
		{ID: "Security", Visible: true, Rows: []rowSnapshot{{"Warden", 2, false, true}}},
		{ID: "Service", Visible: true, Rows: []rowSnapshot{{"Cook", slots.Unlimited, false, true}}},
	}, snapshot(vm))

	vm.ApplySearch("war")

	assert.Equal(t, []sectionSnapshot{
		{ID: "Security", Visible: true, Rows: []rowSnapshot{{"Warden", 2, false, true}}},
		{ID: "Service", Visible: false, Rows: []rowSnapshot{{"Cook", slots.Unlimited, false, false}}},
	}, snapshot(vm))
}

func TestApplyStateGroupsAndOrders(t *testing.T) {
	vm := newStationViewModel(t)
	vm.ApplyState(stationState())

	sections := vm.Sections()
	require.Len(t, sections, 3)

	assert.Equal(t, "Command", sections[0].Title())
	assert.Equal(t, "Security", sections[1].Title())
	assert.Equal(t, "Service", sections[2].Title())
	assert.Equal(t, "#DE3A3A", sections[1].Color().Hex())

	var security []string
	for _, r := range sections[1].Rows() {
		security = append(security, r.Name())
	}
	assert.Equal(t, []string{"Warden", "Detective", "Security Officer"}, security)

	service := sections[2].Rows()
	require.Len(t, service, 2)
	assert.Equal(t, catalog.JobID("Bartender"), service[0].ID())
	assert.True(t, service[0].Blacklisted())
	assert.True(t, service[0].Slots().IsUnlimited())
	assert.Equal(t, catalog.JobID("Cook"), service[1].ID())
}

func TestOmission(t *testing.T) {
	vm := newStationViewModel(t)
	vm.ApplyState(stationState())

	for _, s := range vm.Sections() {
		for _, r := range s.Rows() {
			assert.NotEqual(t, catalog.JobID("Clown"), r.ID())
			assert.NotEqual(t, catalog.JobID("Ghost"), r.ID())
		}
	}
}

func TestDeterminism(t *testing.T) {
	vm := newStationViewModel(t)
	vm.ApplyState(stationState())
	first := snapshot(vm)

	for i := 0; i < 10; i++ {
		vm.ApplyState(stationState())
		assert.Equal(t, first, snapshot(vm))
	}

	other := newStationViewModel(t)
	other.ApplyState(stationState())
	assert.Equal(t, first, snapshot(other))
}

func TestFilterIdempotent(t *testing.T) {
	vm := newStationViewModel(t)
	vm.ApplyState(stationState())

	vm.ApplySearch("co")
	once := snapshot(vm)
	vm.ApplySearch("co")
	assert.Equal(t, once, snapshot(vm))
}

func TestFilterMonotonic(t *testing.T) {
	vm := newStationViewModel(t)
	vm.ApplyState(stationState())

	queries := []string{"", "e", "ec", "ecu", "ecur", "security officer", "security officerx"}
	prev := visibleJobs(vm)
	for _, q := range queries {
		vm.ApplySearch(q)
		cur := visibleJobs(vm)
		for job := range cur {
			assert.True(t, prev[job], "query %q made %s visible", q, job)
		}
		prev = cur
	}
	assert.Empty(t, prev)
}

func TestEmptyQueryShowsAll(t *testing.T) {
	vm := newStationViewModel(t)
	vm.ApplyState(stationState())

	for _, q := range []string{"", "   ", "\t"} {
		vm.ApplySearch("zzz")
		assert.Empty(t, vm.VisibleRows())

		vm.ApplySearch(q)
		assert.Len(t, vm.VisibleRows(), 6)
		for _, s := range vm.Sections() {
			assert.True(t, s.Visible())
		}
	}
}

func TestSearchPreservedAcrossRefresh(t *testing.T) {
	vm := newStationViewModel(t)
	vm.ApplyState(stationState())
	vm.ApplySearch("bar")

	next := stationState()
	next.Debug = true
	next.Jobs["Bartender"] = 3
	vm.ApplyState(next)

	assert.Equal(t, "bar", vm.Search())
	assert.True(t, vm.DebugControls())

	rows := vm.VisibleRows()
	require.Len(t, rows, 1)
	assert.Equal(t, catalog.JobID("Bartender"), rows[0].ID())
	assert.Equal(t, slots.SlotCount(3), rows[0].Slots())

	sections := vm.Sections()
	assert.False(t, sections[0].Visible())
	assert.False(t, sections[1].Visible())
	assert.True(t, sections[2].Visible())
}

func TestSectionVisibilityFollowsRows(t *testing.T) {
	vm := newStationViewModel(t)
	vm.ApplyState(stationState())

	for _, q := range []string{"", "cap", "war", "cook", "o", "nothing"} {
		vm.ApplySearch(q)
		for _, s := range vm.Sections() {
			anyVisible := false
			for _, r := range s.Rows() {
				anyVisible = anyVisible || r.Visible()
			}
			assert.Equal(t, anyVisible, s.Visible(), "query %q section %s", q, s.ID())
		}
	}
}

func TestAdjustEventsCarryRowJob(t *testing.T) {
	vm := newStationViewModel(t)
	vm.ApplyState(stationState())

	var got []slots.AdjustmentIntent
	unsubscribe := vm.OnAdjustRequested(func(job catalog.JobID, kind slots.AdjustmentKind) {
		got = append(got, slots.AdjustmentIntent{Job: job, Kind: kind})
	})

	var want []slots.AdjustmentIntent
	for _, s := range vm.Sections() {
		for _, r := range s.Rows() {
			r.Adjust(slots.Increase)
			want = append(want, slots.AdjustmentIntent{Job: r.ID(), Kind: slots.Increase})
		}
	}
	assert.Equal(t, want, got)
	assert.Len(t, got, 6)

	// Rows held across a refresh still report their own job.
	held := vm.Sections()[0].Rows()[0]
	vm.ApplyState(stationState())
	got = nil
	held.Adjust(slots.SetUnlimited)
	assert.Equal(t, []slots.AdjustmentIntent{{Job: "Captain", Kind: slots.SetUnlimited}}, got)

	unsubscribe()
	got = nil
	held.Adjust(slots.Decrease)
	assert.Empty(t, got)
}

func TestAdjustHandlersRunInOrder(t *testing.T) {
	vm := newStationViewModel(t)
	vm.ApplyState(stationState())

	var calls []string
	vm.OnAdjustRequested(func(catalog.JobID, slots.AdjustmentKind) { calls = append(calls, "first") })
	vm.OnAdjustRequested(func(catalog.JobID, slots.AdjustmentKind) { calls = append(calls, "second") })

	vm.VisibleRows()[0].Adjust(slots.Decrease)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestHandlerAddedDuringEmitWaitsForNextEvent(t *testing.T) {
	vm := newStationViewModel(t)
	vm.ApplyState(stationState())

	var late int
	subscribed := false
	vm.OnAdjustRequested(func(catalog.JobID, slots.AdjustmentKind) {
		if subscribed {
			return
		}
		subscribed = true
		vm.OnAdjustRequested(func(catalog.JobID, slots.AdjustmentKind) { late++ })
	})

	row := vm.VisibleRows()[0]
	row.Adjust(slots.Increase)
	assert.Equal(t, 0, late)

	row.Adjust(slots.Increase)
	assert.Equal(t, 1, late)
}

func TestSectionsAreReadOnlyCopies(t *testing.T) {
	vm := newStationViewModel(t)
	vm.ApplyState(stationState())

	sections := vm.Sections()
	sections[0] = nil
	rows := vm.Sections()[1].Rows()
	rows[0] = nil

	assert.NotNil(t, vm.Sections()[0])
	assert.NotNil(t, vm.Sections()[1].Rows()[0])
}

func TestApplyNilState(t *testing.T) {
	vm := newStationViewModel(t)
	vm.ApplyState(stationState())
	vm.ApplyState(nil)

	assert.Empty(t, vm.Sections())
	assert.False(t, vm.DebugControls())
}
