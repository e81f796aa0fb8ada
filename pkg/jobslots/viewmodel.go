// Package jobslots turns a console state snapshot into the grouped, ordered
// and filterable structure a job slot panel renders, and relays the panel's
// adjustment requests back to the caller.
//
// A ViewModel is driven from a single event loop. ApplyState and ApplySearch
// run to completion and are not safe for concurrent use.
package jobslots

import (
	"github.com/grovetools/jobslots/logging"
	"github.com/grovetools/jobslots/pkg/catalog"
	"github.com/grovetools/jobslots/pkg/slots"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// AdjustHandler receives adjustment requests raised by rows.
type AdjustHandler func(job catalog.JobID, kind slots.AdjustmentKind)

// JobRow is one job line in a department section. The renderer reads it;
// only the ViewModel changes it.
type JobRow struct {
	job         catalog.JobID
	name        string
	slots       slots.SlotCount
	blacklisted bool
	visible     bool
	emit        AdjustHandler
}

// ID returns the job the row was built for.
func (r *JobRow) ID() catalog.JobID { return r.job }

// Name returns the localized job name.
func (r *JobRow) Name() string { return r.name }

// Slots returns the slot count from the last applied state.
func (r *JobRow) Slots() slots.SlotCount { return r.slots }

// Blacklisted reports whether the job is blacklisted.
func (r *JobRow) Blacklisted() bool { return r.blacklisted }

// Visible reports whether the row passes the current search.
func (r *JobRow) Visible() bool { return r.visible }

// Adjust raises an adjustment request for this row's job.
func (r *JobRow) Adjust(kind slots.AdjustmentKind) {
	if r.emit != nil {
		r.emit(r.job, kind)
	}
}

// Section is a department header with its ordered rows.
type Section struct {
	department *catalog.DepartmentDefinition
	title      string
	rows       []*JobRow
}

// ID returns the department ID.
func (s *Section) ID() catalog.DepartmentID { return s.department.ID }

// Title returns the localized department name.
func (s *Section) Title() string { return s.title }

// Color returns the department color.
func (s *Section) Color() catalog.Color { return s.department.Color }

// Rows returns the section's rows in display order.
func (s *Section) Rows() []*JobRow {
	out := make([]*JobRow, len(s.rows))
	copy(out, s.rows)
	return out
}

// VisibleRows returns the rows that pass the current search.
func (s *Section) VisibleRows() []*JobRow {
	var out []*JobRow
	for _, r := range s.rows {
		if r.visible {
			out = append(out, r)
		}
	}
	return out
}

// Visible reports whether any row is visible. A hidden section hides its
// header as well.
func (s *Section) Visible() bool {
	for _, r := range s.rows {
		if r.visible {
			return true
		}
	}
	return false
}

// Options configures a ViewModel.
type Options struct {
	// DepartmentRanking lists department IDs in display order. Departments
	// not listed follow, sorted by name.
	DepartmentRanking []catalog.DepartmentID
	// Locale drives name collation. Defaults to en-US.
	Locale language.Tag
	Logger *logrus.Entry
}

// ViewModel owns the derived panel structure.
type ViewModel struct {
	resolver  catalog.Resolver
	loc       catalog.Localizer
	deptOrder *DepartmentOrder
	jobOrder  *JobOrder
	logger    *logrus.Entry

	state    *slots.ConsoleState
	search   string
	sections []*Section

	handlers map[int]AdjustHandler
	nextID   int
}

// New creates an empty ViewModel.
func New(resolver catalog.Resolver, loc catalog.Localizer, opts Options) *ViewModel {
	if loc == nil {
		loc = catalog.IdentityLocalizer
	}
	tag := opts.Locale
	if tag == language.Und {
		tag = language.AmericanEnglish
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger("jobslots")
	}
	return &ViewModel{
		resolver:  resolver,
		loc:       loc,
		deptOrder: NewDepartmentOrder(opts.DepartmentRanking, loc, tag),
		jobOrder:  NewJobOrder(tag),
		logger:    logger,
		handlers:  make(map[int]AdjustHandler),
	}
}

// ApplyState rebuilds the sections from state and re-applies the current
// search. The new structure replaces the old one in a single assignment.
func (vm *ViewModel) ApplyState(state *slots.ConsoleState) {
	if state == nil {
		state = &slots.ConsoleState{}
	}

	groups := GroupJobs(vm.resolver, state, vm.logger)

	depts := make([]*catalog.DepartmentDefinition, 0, len(groups))
	for _, g := range groups {
		depts = append(depts, g.Department)
	}
	vm.deptOrder.Sort(depts)

	sections := make([]*Section, 0, len(depts))
	for _, d := range depts {
		g := groups[d.ID]
		vm.jobOrder.Sort(g.Jobs)

		sec := &Section{
			department: d,
			title:      vm.loc.Localize(d.Name),
			rows:       make([]*JobRow, 0, len(g.Jobs)),
		}
		for _, j := range g.Jobs {
			sec.rows = append(sec.rows, &JobRow{
				job:         j.Definition.ID,
				name:        j.Definition.DisplayName,
				slots:       j.Slots,
				blacklisted: j.Blacklisted,
				emit:        vm.emit,
			})
		}
		sections = append(sections, sec)
	}

	filterSections(sections, vm.search)

	vm.state = state
	vm.sections = sections

	vm.logger.WithFields(logrus.Fields{
		"jobs":     len(state.Jobs),
		"sections": len(sections),
		"debug":    state.Debug,
	}).Debug("Applied console state")
}

// ApplySearch re-filters the existing sections. Grouping and ordering are
// not recomputed.
func (vm *ViewModel) ApplySearch(text string) {
	vm.search = text
	filterSections(vm.sections, text)
}

// Search returns the last applied search text.
func (vm *ViewModel) Search() string {
	return vm.search
}

// Sections returns the sections in display order, hidden ones included.
func (vm *ViewModel) Sections() []*Section {
	out := make([]*Section, len(vm.sections))
	copy(out, vm.sections)
	return out
}

// VisibleRows flattens the visible rows of all sections in display order.
func (vm *ViewModel) VisibleRows() []*JobRow {
	var out []*JobRow
	for _, s := range vm.sections {
		out = append(out, s.VisibleRows()...)
	}
	return out
}

// DebugControls reports whether the last state enabled debug controls.
func (vm *ViewModel) DebugControls() bool {
	return vm.state != nil && vm.state.Debug
}

// State returns the last applied state, or nil.
func (vm *ViewModel) State() *slots.ConsoleState {
	return vm.state
}

// OnAdjustRequested registers h and returns a function that removes it.
// Handlers run synchronously, in registration order.
func (vm *ViewModel) OnAdjustRequested(h AdjustHandler) (unsubscribe func()) {
	id := vm.nextID
	vm.nextID++
	vm.handlers[id] = h
	return func() { delete(vm.handlers, id) }
}

func (vm *ViewModel) emit(job catalog.JobID, kind slots.AdjustmentKind) {
	vm.logger.WithFields(logrus.Fields{"job": job, "kind": kind}).Debug("Adjustment requested")
	n := vm.nextID
	for id := 0; id < n; id++ {
		if h, ok := vm.handlers[id]; ok {
			h(job, kind)
		}
	}
}

func filterSections(sections []*Section, query string) {
	for _, s := range sections {
		for i, v := range ComputeVisibility(s.rows, query) {
			s.rows[i].visible = v
		}
	}
}
