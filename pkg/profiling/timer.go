package profiling

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Stopper ends a timed span.
type Stopper interface {
	Stop()
}

type span struct {
	name     string
	start    time.Time
	duration time.Duration
	depth    int
	timer    *Timer
}

func (s *span) Stop() {
	s.timer.end(s)
}

// Timer records nested spans. A disabled timer hands out no-op stoppers.
type Timer struct {
	mu      sync.Mutex
	enabled bool
	started time.Time
	spans   []*span
	open    int
}

// NewTimer returns a timer that records only when enabled.
func NewTimer(enabled bool) *Timer {
	return &Timer{enabled: enabled, started: time.Now()}
}

// Enabled reports whether spans are recorded.
func (t *Timer) Enabled() bool {
	return t != nil && t.enabled
}

// Start opens a span nested under any span still open.
func (t *Timer) Start(name string) Stopper {
	if !t.Enabled() {
		return noopStopper{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	s := &span{name: name, start: time.Now(), depth: t.open, timer: t}
	t.spans = append(t.spans, s)
	t.open++
	return s
}

func (t *Timer) end(s *span) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s.duration != 0 {
		return
	}
	s.duration = time.Since(s.start)
	if t.open > 0 {
		t.open--
	}
}

// Summarize writes every span in start order, indented by nesting, with its
// share of the time since the timer was created.
func (t *Timer) Summarize(w io.Writer) {
	if !t.Enabled() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	total := time.Since(t.started)
	fmt.Fprintln(w, "\n--- Timing Profile ---")
	for _, s := range t.spans {
		pct := 0.0
		if total > 0 {
			pct = float64(s.duration) / float64(total) * 100
		}
		fmt.Fprintf(w, "%s- %s (%v, %.1f%%)\n",
			strings.Repeat("  ", s.depth+1), s.name, s.duration.Round(100*time.Microsecond), pct)
	}
	fmt.Fprintf(w, "total %v\n", total.Round(100*time.Microsecond))
}

type noopStopper struct{}

func (noopStopper) Stop() {}
