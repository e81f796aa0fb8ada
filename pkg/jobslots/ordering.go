package jobslots

import (
	"sort"

	"github.com/grovetools/jobslots/pkg/catalog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DepartmentOrder ranks departments: those in the ranking list come first in
// list order, the rest follow by localized name and then by ID.
type DepartmentOrder struct {
	rank     map[catalog.DepartmentID]int
	loc      catalog.Localizer
	collator *collate.Collator
}

// NewDepartmentOrder builds the department comparer. Duplicate ranking
// entries keep their first position.
func NewDepartmentOrder(ranking []catalog.DepartmentID, loc catalog.Localizer, tag language.Tag) *DepartmentOrder {
	if loc == nil {
		loc = catalog.IdentityLocalizer
	}
	rank := make(map[catalog.DepartmentID]int, len(ranking))
	for i, id := range ranking {
		if _, seen := rank[id]; !seen {
			rank[id] = i
		}
	}
	return &DepartmentOrder{rank: rank, loc: loc, collator: collate.New(tag)}
}

// Compare returns -1, 0 or +1. It returns 0 only for equal IDs.
func (o *DepartmentOrder) Compare(a, b *catalog.DepartmentDefinition) int {
	ra, aRanked := o.rank[a.ID]
	rb, bRanked := o.rank[b.ID]
	switch {
	case aRanked && bRanked && ra != rb:
		return cmpInt(ra, rb)
	case aRanked && !bRanked:
		return -1
	case !aRanked && bRanked:
		return 1
	}
	if c := o.collator.CompareString(o.loc.Localize(a.Name), o.loc.Localize(b.Name)); c != 0 {
		return c
	}
	return cmpString(string(a.ID), string(b.ID))
}

// Sort orders departments in place.
func (o *DepartmentOrder) Sort(depts []*catalog.DepartmentDefinition) {
	sort.SliceStable(depts, func(i, j int) bool { return o.Compare(depts[i], depts[j]) < 0 })
}

// JobOrder sorts jobs within a department: heaviest display weight first,
// then by display name in the locale's collation, then by ID.
type JobOrder struct {
	collator *collate.Collator
}

// NewJobOrder returns the job comparer for a locale.
func NewJobOrder(tag language.Tag) *JobOrder {
	return &JobOrder{collator: collate.New(tag)}
}

// Compare returns -1, 0 or +1. It returns 0 only for equal IDs.
func (o *JobOrder) Compare(a, b *catalog.JobDefinition) int {
	if a.DisplayWeight != b.DisplayWeight {
		return cmpInt(b.DisplayWeight, a.DisplayWeight)
	}
	if c := o.collator.CompareString(a.DisplayName, b.DisplayName); c != 0 {
		return c
	}
	return cmpString(string(a.ID), string(b.ID))
}

// Sort orders grouped jobs in place.
func (o *JobOrder) Sort(jobs []GroupedJob) {
	sort.SliceStable(jobs, func(i, j int) bool { return o.Compare(jobs[i].Definition, jobs[j].Definition) < 0 })
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
