package slots

import (
	"fmt"
	"strings"

	"github.com/grovetools/jobslots/pkg/catalog"
)

// AdjustmentKind enumerates what a row control asks the session to do.
type AdjustmentKind string

const (
	Increase     AdjustmentKind = "Increase"
	Decrease     AdjustmentKind = "Decrease"
	SetUnlimited AdjustmentKind = "SetUnlimited"
	// SetFinite and ToggleBlacklist are only offered with debug controls.
	SetFinite       AdjustmentKind = "SetFinite"
	ToggleBlacklist AdjustmentKind = "ToggleBlacklist"
)

// AllAdjustments lists the recognized kinds.
var AllAdjustments = []AdjustmentKind{Increase, Decrease, SetUnlimited, SetFinite, ToggleBlacklist}

// Valid reports whether k is one of the recognized kinds.
func (k AdjustmentKind) Valid() bool {
	for _, a := range AllAdjustments {
		if a == k {
			return true
		}
	}
	return false
}

// DebugOnly reports whether k is only exposed with debug controls.
func (k AdjustmentKind) DebugOnly() bool {
	return k == SetFinite || k == ToggleBlacklist
}

// ParseAdjustmentKind matches a kind name case-insensitively. Dashes and
// underscores are ignored, so "set-unlimited" parses as SetUnlimited.
func ParseAdjustmentKind(s string) (AdjustmentKind, error) {
	norm := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, a := range AllAdjustments {
		if strings.ToLower(string(a)) == norm {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown adjustment %q", s)
}

// AdjustmentIntent is raised by the panel and consumed by the session layer.
type AdjustmentIntent struct {
	Job  catalog.JobID  `json:"job"`
	Kind AdjustmentKind `json:"kind"`
}

func (i AdjustmentIntent) String() string {
	return fmt.Sprintf("%s(%s)", i.Kind, i.Job)
}
