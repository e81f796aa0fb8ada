package session

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/grovetools/jobslots/logging"
	"github.com/grovetools/jobslots/pkg/slots"
	"github.com/sirupsen/logrus"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher reloads a state snapshot file whenever it changes on disk.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func(*slots.ConsoleState)
	logger   *logrus.Entry

	mu    sync.Mutex
	timer *time.Timer
	// gen increases with every scheduled reload; a reload delivers only if
	// no newer one was scheduled while it was decoding.
	gen uint64

	reloadMu sync.Mutex
}

// NewWatcher watches path. onChange receives each successfully decoded
// snapshot; files that fail to decode are logged and skipped so a half
// written file never blanks the panel.
//
// The parent directory is watched rather than the file itself, since
// editors commonly replace files by rename.
func NewWatcher(path string, debounceMs int, onChange func(*slots.ConsoleState)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	debounce := time.Duration(debounceMs) * time.Millisecond
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	return &Watcher{
		watcher:  fw,
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		logger:   logging.NewLogger("state-watcher"),
	}, nil
}

// WithLogger replaces the watcher logger.
func (w *Watcher) WithLogger(logger *logrus.Entry) *Watcher {
	w.logger = logger
	return w
}

// Start processes file events until ctx is cancelled or the watcher is
// closed. It blocks.
func (w *Watcher) Start(ctx context.Context) {
	defer w.stopTimer()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.schedule()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			w.watcher.Close()
			return
		}
	}
}

// schedule coalesces a burst of writes into a single reload that fires once
// the file has been quiet for the debounce interval.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.gen++
	gen := w.gen
	w.timer = time.AfterFunc(w.debounce, func() { w.reload(gen) })
}

func (w *Watcher) current(gen uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gen == gen
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

// reload runs one at a time, so deliveries never interleave.
func (w *Watcher) reload(gen uint64) {
	w.reloadMu.Lock()
	defer w.reloadMu.Unlock()

	if !w.current(gen) {
		return
	}
	state, err := LoadSnapshot(w.path)
	if err != nil {
		w.logger.WithError(err).Warn("Skipping unreadable state snapshot")
		return
	}
	if !w.current(gen) {
		w.logger.Debug("Dropping superseded state snapshot")
		return
	}
	w.logger.WithField("jobs", len(state.Jobs)).Info("State snapshot reloaded")
	if w.onChange != nil {
		w.onChange(state)
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	w.stopTimer()
	return w.watcher.Close()
}
