package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for jobslots.yml. Extension
// sections are allowed as additional properties.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	type BaseConfig struct {
		Version         string      `yaml:"version,omitempty" jsonschema:"description=Configuration version (e.g. '1.0')"`
		Locale          string      `yaml:"locale,omitempty" jsonschema:"description=BCP 47 language tag (default: en-US)"`
		Catalog         string      `yaml:"catalog,omitempty" jsonschema:"description=Path to the catalog manifest (yaml or toml)"`
		State           string      `yaml:"state,omitempty" jsonschema:"description=Path to the console state snapshot"`
		Debug           bool        `yaml:"debug,omitempty" jsonschema:"description=Force debug controls on"`
		DepartmentOrder []string    `yaml:"department_order,omitempty" jsonschema:"description=Department IDs in display order,uniqueItems=true"`
		Watch           WatchConfig `yaml:"watch,omitempty" jsonschema:"description=Live reload of the state snapshot"`
	}

	schema := r.Reflect(&BaseConfig{})
	schema.Title = "Job Slots Panel Configuration"
	schema.Description = "Schema for jobslots.yml."

	return json.MarshalIndent(schema, "", "  ")
}
