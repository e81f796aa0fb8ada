// Package catalog resolves job and department identifiers to their static
// definitions. It is a read-only lookup: nothing in this package is mutated
// after a Catalog has been built.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// JobID references a job definition.
type JobID string

// DepartmentID references a department definition.
type DepartmentID string

// Color is an RGBA color attached to a department.
type Color struct {
	R, G, B, A uint8
}

// Hex returns the color as #RRGGBB, or #RRGGBBAA when not fully opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseColor parses #RGB, #RRGGBB or #RRGGBBAA.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// JobDefinition is the static description of a job.
type JobDefinition struct {
	ID JobID
	// Name is the localization key of the job name.
	Name string
	// DisplayName is Name resolved through the catalog's localizer.
	DisplayName   string
	DisplayWeight int
	// Departments lists every department that has this job as a member,
	// sorted by ID.
	Departments []DepartmentID
}

// DepartmentDefinition is the static description of a department.
type DepartmentDefinition struct {
	ID DepartmentID
	// Name is the localization key of the department name.
	Name  string
	Color Color
	// Roles holds the member jobs in manifest order.
	Roles []JobID

	members    map[JobID]struct{}
	primaryFor map[JobID]struct{}
}

// NewDepartment builds a department definition. Jobs listed in primaryFor
// are added to the member set if they are not already in roles.
func NewDepartment(id DepartmentID, name string, color Color, roles []JobID, primaryFor []JobID) *DepartmentDefinition {
	d := &DepartmentDefinition{
		ID:         id,
		Name:       name,
		Color:      color,
		members:    make(map[JobID]struct{}, len(roles)),
		primaryFor: make(map[JobID]struct{}, len(primaryFor)),
	}
	for _, r := range roles {
		if _, dup := d.members[r]; dup {
			continue
		}
		d.members[r] = struct{}{}
		d.Roles = append(d.Roles, r)
	}
	for _, p := range primaryFor {
		d.primaryFor[p] = struct{}{}
		if _, ok := d.members[p]; !ok {
			d.members[p] = struct{}{}
			d.Roles = append(d.Roles, p)
		}
	}
	return d
}

// HasMember reports whether the job belongs to the department.
func (d *DepartmentDefinition) HasMember(job JobID) bool {
	_, ok := d.members[job]
	return ok
}

// IsPrimaryFor reports whether the department is the job's primary department.
func (d *DepartmentDefinition) IsPrimaryFor(job JobID) bool {
	_, ok := d.primaryFor[job]
	return ok
}

// Resolver is the read-only lookup the view model consumes.
type Resolver interface {
	ResolveJob(id JobID) (*JobDefinition, bool)
	ResolveDepartment(id DepartmentID) (*DepartmentDefinition, bool)
	EnumerateDepartments() []*DepartmentDefinition
}
