package catalog

import (
	"fmt"
	"sort"
)

// Catalog is an in-memory Resolver.
type Catalog struct {
	jobs        map[JobID]*JobDefinition
	departments map[DepartmentID]*DepartmentDefinition
	order       []*DepartmentDefinition
}

// New builds a catalog from job and department definitions. Department
// enumeration order follows the departments slice. Each job's Departments
// list is derived from department membership; DisplayName is filled from
// the localizer when empty.
func New(jobs []*JobDefinition, departments []*DepartmentDefinition, loc Localizer) (*Catalog, error) {
	if loc == nil {
		loc = IdentityLocalizer
	}

	c := &Catalog{
		jobs:        make(map[JobID]*JobDefinition, len(jobs)),
		departments: make(map[DepartmentID]*DepartmentDefinition, len(departments)),
	}

	for _, d := range departments {
		if d.ID == "" {
			return nil, fmt.Errorf("department with empty id")
		}
		if _, dup := c.departments[d.ID]; dup {
			return nil, fmt.Errorf("duplicate department '%s'", d.ID)
		}
		c.departments[d.ID] = d
		c.order = append(c.order, d)
	}

	for _, j := range jobs {
		if j.ID == "" {
			return nil, fmt.Errorf("job with empty id")
		}
		if _, dup := c.jobs[j.ID]; dup {
			return nil, fmt.Errorf("duplicate job '%s'", j.ID)
		}
		def := *j
		if def.DisplayName == "" {
			def.DisplayName = loc.Localize(def.Name)
		}
		if def.DisplayName == "" {
			def.DisplayName = string(def.ID)
		}
		def.Departments = nil
		for _, d := range departments {
			if d.HasMember(def.ID) {
				def.Departments = append(def.Departments, d.ID)
			}
		}
		sort.Slice(def.Departments, func(a, b int) bool { return def.Departments[a] < def.Departments[b] })
		c.jobs[def.ID] = &def
	}

	return c, nil
}

// ResolveJob implements Resolver.
func (c *Catalog) ResolveJob(id JobID) (*JobDefinition, bool) {
	j, ok := c.jobs[id]
	return j, ok
}

// ResolveDepartment implements Resolver.
func (c *Catalog) ResolveDepartment(id DepartmentID) (*DepartmentDefinition, bool) {
	d, ok := c.departments[id]
	return d, ok
}

// EnumerateDepartments implements Resolver. The returned slice is a copy.
func (c *Catalog) EnumerateDepartments() []*DepartmentDefinition {
	out := make([]*DepartmentDefinition, len(c.order))
	copy(out, c.order)
	return out
}

// Jobs returns every job ID in the catalog, sorted.
func (c *Catalog) Jobs() []JobID {
	ids := make([]JobID, 0, len(c.jobs))
	for id := range c.jobs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}
