package display

import (
	"bufio"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/psantana5/lapse/internal/logging"
	"github.com/psantana5/lapse/pkg/stopwatch"
)

const (
	// DefaultInterval is the nominal render cadence
	DefaultInterval = 100 * time.Millisecond

	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
)

// Session is one live-display invocation over a borrowed stopwatch.
// It renders the ticking elapsed value in place until a line arrives
// on the input reader or Cancel is called. Each Run is a fresh
// session; the cancellation flag is owned by the session, not shared
// process-wide.
type Session struct {
	sw       *stopwatch.Stopwatch
	out      io.Writer
	in       io.Reader
	interval time.Duration
	logger   *logging.Logger

	cancelled atomic.Bool
}

// Option configures a session
type Option func(*Session)

// WithInterval overrides the render cadence
func WithInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithLogger attaches a logger for session lifecycle events
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession creates a display session over sw, rendering to out and
// listening for a cancellation line on in
func NewSession(sw *stopwatch.Stopwatch, out io.Writer, in io.Reader, opts ...Option) *Session {
	s := &Session{
		sw:       sw,
		out:      out,
		in:       in,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cancel raises the session's cancellation flag. The render loop
// exits within one polling interval.
func (s *Session) Cancel() {
	s.cancelled.Store(true)
}

// Run drives the render loop until cancelled.
//
// If the stopwatch is not running it is started first; AlreadyRunning
// is deliberately ignored so watching an active stopwatch just
// attaches to it. The stopwatch is never stopped on exit: timing
// continues uninterrupted across watch sessions.
func (s *Session) Run() {
	if err := s.sw.Start(); err != nil && !stopwatch.IsKind(err, stopwatch.AlreadyRunning) {
		// Start only fails with AlreadyRunning; anything else is a bug
		if s.logger != nil {
			s.logger.Error("watch auto-start failed", map[string]interface{}{"error": err.Error()})
		}
		return
	}

	s.cancelled.Store(false)

	// Listener: one line of input ends the session
	go func() {
		reader := bufio.NewReader(s.in)
		_, _ = reader.ReadString('\n')
		s.cancelled.Store(true)
	}()

	if s.logger != nil {
		s.logger.Debug("watch session started", map[string]interface{}{"interval": s.interval.String()})
	}

	fmt.Fprintf(s.out, "[Press Enter to stop watching]\n%s", hideCursor)

	for !s.cancelled.Load() {
		fmt.Fprintf(s.out, "\r%s", stopwatch.Format(s.sw.Elapsed()))
		time.Sleep(s.interval)
	}

	// Final render so the printed value matches the moment of exit
	fmt.Fprintf(s.out, "\r%s\n%s", stopwatch.Format(s.sw.Elapsed()), showCursor)

	if s.logger != nil {
		s.logger.Debug("watch session ended", map[string]interface{}{"running": s.sw.Running()})
	}
}
