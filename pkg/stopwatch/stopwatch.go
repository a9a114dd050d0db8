package stopwatch

import "time"

// Lap is an immutable marker recorded while the stopwatch is running.
// AtMs is the elapsed time at the moment of recording, measured from
// the stopwatch's logical zero, not wall clock.
type Lap struct {
	Index int    `json:"index"`
	AtMs  int64  `json:"at_ms"`
	Label string `json:"label,omitempty"`
}

// Stopwatch measures elapsed time across start/stop cycles and keeps
// an ordered lap log. All operations are synchronous and perform no
// I/O; the instance is owned by a single caller.
type Stopwatch struct {
	accumulated time.Duration
	origin      time.Time
	running     bool
	laps        []Lap

	now func() time.Time
}

// New creates a stopped stopwatch with zero accumulated time and no laps
func New() *Stopwatch {
	return &Stopwatch{now: time.Now}
}

// Start begins a new run interval.
// Fails with AlreadyRunning if the stopwatch is running; state is unchanged.
func (s *Stopwatch) Start() error {
	if s.running {
		return NewError(AlreadyRunning, "start")
	}
	s.origin = s.now()
	s.running = true
	return nil
}

// Stop folds the current run interval into the accumulated total.
// This is the only operation that accumulates; call it before any
// computation that needs a stable total.
// Fails with NotRunning if the stopwatch is stopped; state is unchanged.
func (s *Stopwatch) Stop() error {
	if !s.running {
		return NewError(NotRunning, "stop")
	}
	s.accumulated += s.now().Sub(s.origin)
	s.origin = time.Time{}
	s.running = false
	return nil
}

// Reset returns the stopwatch to its initial state: zero accumulated
// time, not running, laps discarded. Never fails.
func (s *Stopwatch) Reset() {
	s.accumulated = 0
	s.origin = time.Time{}
	s.running = false
	s.laps = nil
}

// Elapsed returns the total elapsed time without mutating state.
// While running it includes the live interval since the last start,
// so repeated reads tick forward; while stopped it equals the
// accumulated total exactly.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.accumulated + s.now().Sub(s.origin)
	}
	return s.accumulated
}

// Lap records a marker at the current elapsed time. Indices are
// 1-based, assigned in call order, and never renumbered.
// Fails with NotRunning while stopped: a lap only has meaning
// relative to a running interval.
func (s *Stopwatch) Lap(label string) (Lap, error) {
	if !s.running {
		return Lap{}, NewError(NotRunning, "lap")
	}
	lap := Lap{
		Index: len(s.laps) + 1,
		AtMs:  s.Elapsed().Milliseconds(),
		Label: label,
	}
	s.laps = append(s.laps, lap)
	return lap, nil
}

// Running reports whether the stopwatch is between a start and a stop
func (s *Stopwatch) Running() bool {
	return s.running
}

// Laps returns a copy of the lap log in record order
func (s *Stopwatch) Laps() []Lap {
	out := make([]Lap, len(s.laps))
	copy(out, s.laps)
	return out
}

// LapCount returns the number of recorded laps
func (s *Stopwatch) LapCount() int {
	return len(s.laps)
}
