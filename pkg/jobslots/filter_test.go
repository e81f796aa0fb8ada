package jobslots

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		subject  string
		expected bool
	}{
		{"empty query", "", "Warden", true},
		{"whitespace query", "   ", "Warden", true},
		{"prefix", "war", "Warden", true},
		{"upper query", "WAR", "Warden", true},
		{"trimmed", "  den ", "Warden", true},
		{"inner", "ity off", "Security Officer", true},
		{"no match", "cook", "Warden", false},
		{"sharp s folds", "STRASSE", "Straße", true},
		{"capital I folds to i", "I", "Kilim", true},
		{"dotless i stays distinct", "I", "ılık", false},
		{"dotted capital I contains i", "i", "İzmir", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewMatcher(tt.query).Match(tt.subject))
		})
	}
}

func TestComputeVisibility(t *testing.T) {
	rows := []*JobRow{{name: "Warden"}, {name: "Cook"}, {name: "Security Officer"}}

	assert.Equal(t, []bool{true, true, true}, ComputeVisibility(rows, ""))
	assert.Equal(t, []bool{false, true, true}, ComputeVisibility(rows, "o"))
	assert.Equal(t, []bool{false, false, false}, ComputeVisibility(rows, "xyz"))
	assert.Empty(t, ComputeVisibility(nil, "war"))
}
