package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/MKhiriev/danmu-client/internal/logger"
)

// Terminal prints error toasts to a writer.
type Terminal struct {
	mu     sync.Mutex
	out    io.Writer
	logger *logger.Logger
}

// NewTerminal returns a notifier writing to out, or to os.Stderr when out is
// nil.
func NewTerminal(out io.Writer, log *logger.Logger) *Terminal {
	if out == nil {
		out = os.Stderr
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Terminal{out: out, logger: log}
}

// Error shows message. Write failures are logged and otherwise ignored.
func (t *Terminal) Error(message string) {
	t.logger.Warn().Str("toast", message).Msg("error notification")

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := fmt.Fprintln(t.out, renderToast(message)); err != nil {
		t.logger.Error().Err(err).Msg("failed to render notification")
	}
}

// Log is a notifier that only writes to the log.
type Log struct {
	logger *logger.Logger
}

// NewLog returns a log-only notifier.
func NewLog(log *logger.Logger) *Log {
	if log == nil {
		log = logger.Nop()
	}
	return &Log{logger: log}
}

// Error logs message at warn level.
func (l *Log) Error(message string) {
	l.logger.Warn().Str("toast", message).Msg("error notification")
}
