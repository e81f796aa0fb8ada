// Package schema checks raw configuration documents against the JSON
// schema reflected from config.Config.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/grovetools/jobslots/config"
	"github.com/grovetools/jobslots/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const resourceName = "jobslots.schema.json"

// Validator holds the compiled configuration schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the schema returned by config.GenerateSchema.
func NewValidator() (*Validator, error) {
	data, err := config.GenerateSchema()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to generate config schema")
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(resourceName, bytes.NewReader(data)); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to load config schema")
	}
	compiled, err := compiler.Compile(resourceName)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to compile config schema")
	}
	return &Validator{schema: compiled}, nil
}

// Validate checks doc, typically a map decoded from yaml or toml. The
// returned error carries CONFIG_VALIDATION and a "violations" detail
// listing each failing location.
func (v *Validator) Validate(doc interface{}) error {
	// Round-trip through JSON so yaml/toml number and map types match what
	// the validator expects.
	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "config cannot be represented as JSON")
	}
	var normalized interface{}
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "config cannot be represented as JSON")
	}

	err = v.schema.Validate(normalized)
	if err == nil {
		return nil
	}
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "config does not match schema")
	}

	violations := leafViolations(verr)
	msg := "config does not match schema"
	if len(violations) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, violations[0])
	}
	return errors.Wrap(err, errors.ErrCodeConfigValidation, msg).WithDetail("violations", violations)
}

// leafViolations flattens the cause tree to its leaves, which name the
// actual offending values rather than the enclosing objects.
func leafViolations(err *jsonschema.ValidationError) []string {
	var out []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			out = append(out, fmt.Sprintf("%s: %s", loc, e.Message))
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(err)
	sort.Strings(out)
	return out
}
