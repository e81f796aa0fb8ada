package schema

import (
	"testing"

	"github.com/grovetools/jobslots/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    map[string]interface{}
		wantErr bool
	}{
		{
			name: "minimal",
			data: map[string]interface{}{"version": "1.0"},
		},
		{
			name: "defaults left out",
			data: map[string]interface{}{"catalog": "station.yml"},
		},
		{
			name: "watch without enabled",
			data: map[string]interface{}{"watch": map[string]interface{}{"debounce_ms": 250}},
		},
		{
			name: "full",
			data: map[string]interface{}{
				"version":          "1.0",
				"locale":           "de-DE",
				"department_order": []string{"Command", "Security"},
				"watch":            map[string]interface{}{"enabled": true, "debounce_ms": 250},
				"logging":          map[string]interface{}{"level": "debug"},
			},
		},
		{
			name:    "wrong type",
			data:    map[string]interface{}{"debug": "yes"},
			wantErr: true,
		},
		{
			name:    "duplicate departments",
			data:    map[string]interface{}{"department_order": []string{"Cargo", "Cargo"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatorViolations(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	err = v.Validate(map[string]interface{}{
		"debug": "yes",
		"watch": map[string]interface{}{"debounce_ms": -1},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation))

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	violations, ok := e.Details["violations"].([]string)
	require.True(t, ok)
	require.Len(t, violations, 2)
	assert.Contains(t, violations[0], "/debug")
	assert.Contains(t, violations[1], "/watch/debounce_ms")
}
