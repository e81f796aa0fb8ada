// Package session is the local stand-in for the remote session layer. It owns
// the authoritative ConsoleState, applies adjustment intents raised by the
// panel and publishes the resulting snapshot.
package session

import (
	"sync"

	"github.com/grovetools/jobslots/errors"
	"github.com/grovetools/jobslots/logging"
	"github.com/grovetools/jobslots/pkg/catalog"
	"github.com/grovetools/jobslots/pkg/slots"
	"github.com/sirupsen/logrus"
)

// Listener receives every published snapshot. Snapshots are copies and may
// be kept by the listener.
type Listener func(*slots.ConsoleState)

// Session holds the current console state.
type Session struct {
	mu        sync.Mutex
	state     *slots.ConsoleState
	listeners []Listener
	logger    *logrus.Entry
}

// New creates a session seeded with a copy of initial. A nil initial state
// starts empty.
func New(initial *slots.ConsoleState) *Session {
	if initial == nil {
		initial = &slots.ConsoleState{}
	}
	s := &Session{
		state:  initial.Clone(),
		logger: logging.NewLogger("session"),
	}
	if s.state.Jobs == nil {
		s.state.Jobs = make(map[catalog.JobID]slots.SlotCount)
	}
	return s
}

// WithLogger replaces the session logger.
func (s *Session) WithLogger(logger *logrus.Entry) *Session {
	s.logger = logger
	return s
}

// State returns a copy of the current state.
func (s *Session) State() *slots.ConsoleState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers l for future snapshots.
func (s *Session) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Replace swaps in a new snapshot wholesale, e.g. after the state file was
// reloaded, and publishes it.
func (s *Session) Replace(state *slots.ConsoleState) {
	if state == nil {
		state = &slots.ConsoleState{}
	}
	s.mu.Lock()
	s.state = state.Clone()
	if s.state.Jobs == nil {
		s.state.Jobs = make(map[catalog.JobID]slots.SlotCount)
	}
	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snapshot, listeners)
}

// Apply validates and applies one intent, then publishes and returns the new
// state. Debug-only kinds are rejected unless the state has debug enabled.
func (s *Session) Apply(intent slots.AdjustmentIntent) (*slots.ConsoleState, error) {
	if !intent.Kind.Valid() {
		return nil, errors.UnknownAdjustment(string(intent.Kind))
	}

	s.mu.Lock()
	current, ok := s.state.Jobs[intent.Job]
	if !ok {
		s.mu.Unlock()
		return nil, errors.UnknownJob(string(intent.Job))
	}
	if intent.Kind.DebugOnly() && !s.state.Debug {
		s.mu.Unlock()
		return nil, errors.New(errors.ErrCodeInvalidInput, "adjustment requires debug controls").
			WithDetail("kind", string(intent.Kind)).
			WithDetail("job", string(intent.Job))
	}

	switch intent.Kind {
	case slots.Increase:
		if !current.IsUnlimited() {
			s.state.Jobs[intent.Job] = current + 1
		}
	case slots.Decrease:
		if !current.IsUnlimited() && current > 0 {
			s.state.Jobs[intent.Job] = current - 1
		}
	case slots.SetUnlimited:
		s.state.Jobs[intent.Job] = slots.Unlimited
	case slots.SetFinite:
		if current.IsUnlimited() {
			s.state.Jobs[intent.Job] = 0
		}
	case slots.ToggleBlacklist:
		s.state.BlacklistedJobs = toggle(s.state.BlacklistedJobs, intent.Job)
	}

	s.logger.WithFields(logrus.Fields{
		"job":   intent.Job,
		"kind":  intent.Kind,
		"slots": s.state.Jobs[intent.Job].String(),
	}).Debug("Applied adjustment")

	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snapshot, listeners)
	return snapshot.Clone(), nil
}

func (s *Session) snapshotLocked() (*slots.ConsoleState, []Listener) {
	return s.state.Clone(), append([]Listener(nil), s.listeners...)
}

func (s *Session) publish(snapshot *slots.ConsoleState, listeners []Listener) {
	for _, l := range listeners {
		l(snapshot.Clone())
	}
}

func toggle(list []catalog.JobID, job catalog.JobID) []catalog.JobID {
	out := make([]catalog.JobID, 0, len(list)+1)
	found := false
	for _, j := range list {
		if j == job {
			found = true
			continue
		}
		out = append(out, j)
	}
	if !found {
		out = append(out, job)
	}
	return out
}
