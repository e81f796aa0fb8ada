package jobslots

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matcher is a trimmed, case-folded search query. Folding is language
// independent, so "I" and "ı" do not depend on the user's locale.
type Matcher struct {
	folded string
}

// NewMatcher prepares query for matching.
func NewMatcher(query string) Matcher {
	q := strings.TrimSpace(query)
	if q == "" {
		return Matcher{}
	}
	return Matcher{folded: cases.Fold().String(q)}
}

// Empty reports whether the query matches everything.
func (m Matcher) Empty() bool {
	return m.folded == ""
}

// Match reports whether name contains the query, ignoring case.
func (m Matcher) Match(name string) bool {
	if m.Empty() {
		return true
	}
	return strings.Contains(cases.Fold().String(name), m.folded)
}

// ComputeVisibility returns, for each row, whether it passes the query.
func ComputeVisibility(rows []*JobRow, query string) []bool {
	m := NewMatcher(query)
	out := make([]bool, len(rows))
	for i, r := range rows {
		out[i] = m.Match(r.name)
	}
	return out
}
