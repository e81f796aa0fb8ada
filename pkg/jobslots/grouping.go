package jobslots

import (
	"github.com/grovetools/jobslots/pkg/catalog"
	"github.com/grovetools/jobslots/pkg/slots"
	"github.com/sirupsen/logrus"
)

// GroupedJob is one job placed in a department bucket.
type GroupedJob struct {
	Definition  *catalog.JobDefinition
	Slots       slots.SlotCount
	Blacklisted bool
}

// Group is the unordered bucket of jobs for one department.
type Group struct {
	Department *catalog.DepartmentDefinition
	Jobs       []GroupedJob
}

// PrimaryDepartment picks the department a job is presented under. A
// department that is primary for the job wins over one that merely lists it
// as a member. Ties in either tier go to the lowest department ID, so the
// result never depends on catalog enumeration order.
func PrimaryDepartment(r catalog.Resolver, job catalog.JobID) (*catalog.DepartmentDefinition, bool) {
	var primary, member *catalog.DepartmentDefinition
	for _, d := range r.EnumerateDepartments() {
		if !d.HasMember(job) && !d.IsPrimaryFor(job) {
			continue
		}
		if d.IsPrimaryFor(job) && (primary == nil || d.ID < primary.ID) {
			primary = d
		}
		if member == nil || d.ID < member.ID {
			member = d
		}
	}
	if primary != nil {
		return primary, true
	}
	return member, member != nil
}

// GroupJobs partitions the state's jobs into department buckets. Jobs the
// catalog cannot resolve, and jobs with no department, are left out.
func GroupJobs(r catalog.Resolver, state *slots.ConsoleState, logger *logrus.Entry) map[catalog.DepartmentID]*Group {
	groups := make(map[catalog.DepartmentID]*Group)
	if state == nil {
		return groups
	}
	blacklist := state.Blacklist()

	for _, id := range state.JobIDs() {
		def, ok := r.ResolveJob(id)
		if !ok {
			logger.WithField("job", id).Debug("Skipping job missing from catalog")
			continue
		}

		dept, ok := PrimaryDepartment(r, id)
		if !ok {
			logger.WithField("job", id).Debug("Skipping job with no department")
			continue
		}

		g, ok := groups[dept.ID]
		if !ok {
			g = &Group{Department: dept}
			groups[dept.ID] = g
		}
		_, blacklisted := blacklist[id]
		g.Jobs = append(g.Jobs, GroupedJob{
			Definition:  def,
			Slots:       state.Jobs[id],
			Blacklisted: blacklisted,
		})
	}

	return groups
}
