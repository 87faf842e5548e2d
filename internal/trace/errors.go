package trace

import (
	"errors"
	"fmt"
)

// Error kinds reported by graph construction, tracers and playback.
var (
	// ErrInvalidArgument indicates malformed construction parameters such as a
	// vertex count below one or a probability outside [0, 1].
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidInput indicates input a tracer cannot run on, such as a start
	// vertex missing from the graph or a non-finite array entry.
	ErrInvalidInput = errors.New("invalid input")
)

// Error wraps one of the sentinel kinds with the failing operation.
type Error struct {
	Op     string
	Kind   error
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// InvalidArgument builds an ErrInvalidArgument failure for op.
func InvalidArgument(op, format string, args ...any) error {
	return &Error{Op: op, Kind: ErrInvalidArgument, Detail: fmt.Sprintf(format, args...)}
}

// InvalidInput builds an ErrInvalidInput failure for op.
func InvalidInput(op, format string, args ...any) error {
	return &Error{Op: op, Kind: ErrInvalidInput, Detail: fmt.Sprintf(format, args...)}
}

// IsInvalidArgument reports whether err carries ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsInvalidInput reports whether err carries ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
