package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/jobslots/errors"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Manifest is the on-disk form of a catalog.
type Manifest struct {
	// Messages maps a BCP 47 language tag to key -> text pairs.
	Messages    map[string]map[string]string `yaml:"messages,omitempty" toml:"messages,omitempty"`
	Departments []DepartmentManifest         `yaml:"departments" toml:"departments"`
	Jobs        []JobManifest                `yaml:"jobs" toml:"jobs"`
}

// DepartmentManifest describes one department.
type DepartmentManifest struct {
	ID    string   `yaml:"id" toml:"id"`
	Name  string   `yaml:"name,omitempty" toml:"name,omitempty"`
	Color string   `yaml:"color,omitempty" toml:"color,omitempty"`
	Roles []string `yaml:"roles,omitempty" toml:"roles,omitempty"`
	// Primary marks the department as primary for all of its roles.
	Primary    bool     `yaml:"primary,omitempty" toml:"primary,omitempty"`
	PrimaryFor []string `yaml:"primary_for,omitempty" toml:"primary_for,omitempty"`
}

// JobManifest describes one job.
type JobManifest struct {
	ID     string `yaml:"id" toml:"id"`
	Name   string `yaml:"name,omitempty" toml:"name,omitempty"`
	Weight int    `yaml:"weight,omitempty" toml:"weight,omitempty"`
}

// LoadFile reads a YAML or TOML manifest and builds a catalog whose display
// names are resolved for tag.
func LoadFile(path string, tag language.Tag) (*Catalog, *BundleLocalizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.CatalogNotFound(path)
		}
		return nil, nil, errors.Wrap(err, errors.ErrCodeCatalogInvalid, "failed to read catalog manifest").
			WithDetail("path", path)
	}

	m, err := ParseManifest(data, formatOf(path))
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrCodeCatalogInvalid, "failed to parse catalog manifest").
			WithDetail("path", path)
	}

	c, loc, err := m.Build(tag)
	if err != nil {
		return nil, nil, errors.CatalogInvalid(path, err.Error())
	}
	return c, loc, nil
}

// ParseManifest decodes a manifest. format is "yaml" or "toml".
func ParseManifest(data []byte, format string) (*Manifest, error) {
	var m Manifest
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, err
		}
	case "yaml", "":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}
	return &m, nil
}

// Build turns the manifest into a catalog and the localizer used for its
// display names.
func (m *Manifest) Build(tag language.Tag) (*Catalog, *BundleLocalizer, error) {
	loc := NewBundleLocalizer(tag)
	for lang, msgs := range m.Messages {
		t, err := language.Parse(lang)
		if err != nil {
			return nil, nil, fmt.Errorf("messages: invalid language %q: %w", lang, err)
		}
		if err := loc.AddMessages(t, msgs); err != nil {
			return nil, nil, fmt.Errorf("messages for %s: %w", lang, err)
		}
	}

	departments := make([]*DepartmentDefinition, 0, len(m.Departments))
	for _, d := range m.Departments {
		color := Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		if d.Color != "" {
			c, err := ParseColor(d.Color)
			if err != nil {
				return nil, nil, fmt.Errorf("department '%s': %w", d.ID, err)
			}
			color = c
		}
		roles := toJobIDs(d.Roles)
		primaryFor := toJobIDs(d.PrimaryFor)
		if d.Primary {
			primaryFor = append(primaryFor, roles...)
		}
		name := d.Name
		if name == "" {
			name = d.ID
		}
		departments = append(departments, NewDepartment(DepartmentID(d.ID), name, color, roles, primaryFor))
	}

	jobs := make([]*JobDefinition, 0, len(m.Jobs))
	for _, j := range m.Jobs {
		name := j.Name
		if name == "" {
			name = j.ID
		}
		jobs = append(jobs, &JobDefinition{
			ID:            JobID(j.ID),
			Name:          name,
			DisplayWeight: j.Weight,
		})
	}

	c, err := New(jobs, departments, loc)
	if err != nil {
		return nil, nil, err
	}
	return c, loc, nil
}

func toJobIDs(ids []string) []JobID {
	out := make([]JobID, 0, len(ids))
	for _, id := range ids {
		out = append(out, JobID(id))
	}
	return out
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	default:
		return "yaml"
	}
}
