package jobslots

import (
	"testing"

	"github.com/grovetools/jobslots/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestDepartmentOrder(t *testing.T) {
	loc := catalog.LocalizerFunc(func(key string) string {
		return map[string]string{
			"dept-cargo":   "Cargo",
			"dept-science": "Science",
			"dept-medical": "Medical",
		}[key]
	})
	mk := func(id, name string) *catalog.DepartmentDefinition {
		return catalog.NewDepartment(catalog.DepartmentID(id), name, catalog.Color{}, nil, nil)
	}

	depts := []*catalog.DepartmentDefinition{
		mk("Science", "dept-science"),
		mk("Cargo", "dept-cargo"),
		mk("Security", "dept-security"),
		mk("Command", "dept-command"),
		mk("Medical", "dept-medical"),
	}

	order := NewDepartmentOrder([]catalog.DepartmentID{"Command", "Security", "Command"}, loc, language.English)
	order.Sort(depts)

	var ids []catalog.DepartmentID
	for _, d := range depts {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []catalog.DepartmentID{"Command", "Security", "Cargo", "Medical", "Science"}, ids)

	assert.Equal(t, 0, order.Compare(depts[0], depts[0]))
}

func TestDepartmentOrderNameTieUsesID(t *testing.T) {
	a := catalog.NewDepartment("B", "Same", catalog.Color{}, nil, nil)
	b := catalog.NewDepartment("A", "Same", catalog.Color{}, nil, nil)
	order := NewDepartmentOrder(nil, nil, language.English)

	assert.Equal(t, 1, order.Compare(a, b))
	assert.Equal(t, -1, order.Compare(b, a))
}

func TestJobOrder(t *testing.T) {
	jobs := []GroupedJob{
		{Definition: &catalog.JobDefinition{ID: "cook", DisplayName: "cook", DisplayWeight: 5}},
		{Definition: &catalog.JobDefinition{ID: "Bartender", DisplayName: "Bartender", DisplayWeight: 5}},
		{Definition: &catalog.JobDefinition{ID: "HeadOfPersonnel", DisplayName: "Head of Personnel", DisplayWeight: 20}},
		{Definition: &catalog.JobDefinition{ID: "Botanist", DisplayName: "Botanist"}},
		{Definition: &catalog.JobDefinition{ID: "Chef", DisplayName: "Cook", DisplayWeight: 5}},
		{Definition: &catalog.JobDefinition{ID: "Cook", DisplayName: "Cook", DisplayWeight: 5}},
	}

	NewJobOrder(language.English).Sort(jobs)

	var ids []catalog.JobID
	for _, j := range jobs {
		ids = append(ids, j.Definition.ID)
	}
	// weight desc, then collated name (lowercase before uppercase in en), then id
	assert.Equal(t, []catalog.JobID{"HeadOfPersonnel", "Bartender", "cook", "Chef", "Cook", "Botanist"}, ids)
}

func TestJobOrderIsIdempotent(t *testing.T) {
	jobs := []GroupedJob{
		{Definition: &catalog.JobDefinition{ID: "A", DisplayName: "Zed", DisplayWeight: 1}},
		{Definition: &catalog.JobDefinition{ID: "B", DisplayName: "Amy", DisplayWeight: 1}},
		{Definition: &catalog.JobDefinition{ID: "C", DisplayName: "Amy", DisplayWeight: 3}},
	}
	order := NewJobOrder(language.English)
	order.Sort(jobs)
	first := append([]GroupedJob(nil), jobs...)
	order.Sort(jobs)
	assert.Equal(t, first, jobs)
}
