package stopwatch

import "errors"

// ErrorKind categorizes stopwatch failures
type ErrorKind int

const (
	// AlreadyRunning: start attempted while the stopwatch is running
	AlreadyRunning ErrorKind = iota
	// NotRunning: stop or lap attempted while the stopwatch is stopped
	NotRunning
	// Invalid: malformed command or failed external launch, raised by
	// boundary layers only, never by the engine primitives
	Invalid
)

func (k ErrorKind) String() string {
	switch k {
	case AlreadyRunning:
		return "already running"
	case NotRunning:
		return "not running"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Error wraps a failure kind with the operation that produced it
type Error struct {
	Kind ErrorKind
	Op   string // "start", "stop", "lap", "dispatch", "measure"
}

// Error implements error interface
func (e *Error) Error() string {
	return e.Op + ": " + e.Kind.String()
}

// NewError creates an engine error for an operation
func NewError(kind ErrorKind, op string) *Error {
	return &Error{Kind: kind, Op: op}
}

// IsKind reports whether err is a stopwatch error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
