package logging

import (
	"io"
	"os"
	"sync"
)

// stderrSink is shared by every logger built with stderr output. The panel
// points it at io.Discard while the alternate screen is active.
var stderrSink = &swapWriter{target: os.Stderr}

type swapWriter struct {
	mu     sync.RWMutex
	target io.Writer
}

func (s *swapWriter) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target.Write(p)
}

// SetGlobalOutput redirects the stderr sink of all loggers, including ones
// already created. A nil writer discards output.
func SetGlobalOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	stderrSink.mu.Lock()
	stderrSink.target = w
	stderrSink.mu.Unlock()
}

// GetGlobalOutput returns the shared stderr sink.
func GetGlobalOutput() io.Writer {
	return stderrSink
}
