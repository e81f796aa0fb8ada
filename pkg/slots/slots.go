// Package slots holds the console state exchanged with the session layer:
// the slot snapshot that flows into the panel and the adjustment intents that
// flow back out.
package slots

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/grovetools/jobslots/pkg/catalog"
	"gopkg.in/yaml.v3"
)

// SlotCount is the number of open positions for a job. Unlimited marks an
// unbounded job.
type SlotCount int

// Unlimited is the unbounded slot count.
const Unlimited SlotCount = -1

// IsUnlimited reports whether the count is unbounded.
func (s SlotCount) IsUnlimited() bool { return s < 0 }

// String renders the count, using ∞ for unlimited.
func (s SlotCount) String() string {
	if s.IsUnlimited() {
		return "∞"
	}
	return strconv.Itoa(int(s))
}

// ParseSlotCount accepts a non-negative integer or one of
// "unlimited", "infinite", "∞".
func ParseSlotCount(s string) (SlotCount, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unlimited", "infinite", "inf", "∞":
		return Unlimited, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid slot count %q", s)
	}
	return SlotCount(n), nil
}

// MarshalYAML writes unlimited as the string "unlimited".
func (s SlotCount) MarshalYAML() (interface{}, error) {
	if s.IsUnlimited() {
		return "unlimited", nil
	}
	return int(s), nil
}

// UnmarshalYAML accepts integers and the unlimited spellings.
func (s *SlotCount) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseSlotCount(node.Value)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalJSON writes unlimited as null.
func (s SlotCount) MarshalJSON() ([]byte, error) {
	if s.IsUnlimited() {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(int(s))), nil
}

// UnmarshalJSON accepts integers, null and the unlimited spellings.
func (s *SlotCount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*s = Unlimited
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		raw = str
	}
	v, err := ParseSlotCount(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ConsoleState is the snapshot the session layer pushes to the panel. Each
// arrival replaces the previous one wholesale.
type ConsoleState struct {
	Jobs            map[catalog.JobID]SlotCount `yaml:"jobs" json:"jobs"`
	BlacklistedJobs []catalog.JobID             `yaml:"blacklisted_jobs,omitempty" json:"blacklistedJobs,omitempty"`
	Debug           bool                        `yaml:"debug,omitempty" json:"debug,omitempty"`
}

// UnmarshalYAML reads a null job count as unlimited. yaml.v3 zeroes null
// values without consulting SlotCount.UnmarshalYAML, so the jobs mapping is
// decoded through pointers first.
func (s *ConsoleState) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Jobs            map[catalog.JobID]*SlotCount `yaml:"jobs"`
		BlacklistedJobs []catalog.JobID              `yaml:"blacklisted_jobs"`
		Debug           bool                         `yaml:"debug"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	s.Jobs = make(map[catalog.JobID]SlotCount, len(raw.Jobs))
	for id, count := range raw.Jobs {
		if count == nil {
			s.Jobs[id] = Unlimited
			continue
		}
		s.Jobs[id] = *count
	}
	s.BlacklistedJobs = raw.BlacklistedJobs
	s.Debug = raw.Debug
	return nil
}

// IsBlacklisted reports whether job is in the blacklist.
func (s *ConsoleState) IsBlacklisted(job catalog.JobID) bool {
	for _, b := range s.BlacklistedJobs {
		if b == job {
			return true
		}
	}
	return false
}

// Blacklist returns the blacklist as a set.
func (s *ConsoleState) Blacklist() map[catalog.JobID]struct{} {
	set := make(map[catalog.JobID]struct{}, len(s.BlacklistedJobs))
	for _, b := range s.BlacklistedJobs {
		set[b] = struct{}{}
	}
	return set
}

// JobIDs returns the state's job IDs sorted.
func (s *ConsoleState) JobIDs() []catalog.JobID {
	ids := make([]catalog.JobID, 0, len(s.Jobs))
	for id := range s.Jobs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}

// Clone returns a deep copy.
func (s *ConsoleState) Clone() *ConsoleState {
	out := &ConsoleState{
		Jobs:            make(map[catalog.JobID]SlotCount, len(s.Jobs)),
		BlacklistedJobs: append([]catalog.JobID(nil), s.BlacklistedJobs...),
		Debug:           s.Debug,
	}
	for k, v := range s.Jobs {
		out.Jobs[k] = v
	}
	return out
}
