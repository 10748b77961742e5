package signalman

import (
	"errors"
	"fmt"
	"io"

	"github.com/zoobzio/signalman/bus"
)

// Sentinel errors for the typed layer.
var (
	// ErrMarshal is matched by every conversion failure between bus values
	// and typed tuples.
	ErrMarshal = errors.New("signal value conversion failed")

	// ErrUnknownSignal is the bus sentinel, re-exported for callers that
	// only import this package.
	ErrUnknownSignal = bus.ErrUnknownSignal

	// ErrConnectionRejected wraps the reason the bus refused a connection.
	ErrConnectionRejected = errors.New("connection rejected")

	// ErrEndOfStream is returned when a stream closes before delivering.
	ErrEndOfStream = fmt.Errorf("signal stream closed before delivering: %w", io.ErrUnexpectedEOF)
)

// ArityMismatchError reports a value list of the wrong length.
type ArityMismatchError struct {
	Expected int
	Actual   int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("expected %d values, got %d", e.Expected, e.Actual)
}

// Is allows errors.Is to match ArityMismatchError with ErrMarshal.
func (e *ArityMismatchError) Is(target error) bool {
	return target == ErrMarshal
}

// TypeMismatchError reports a value that does not convert to the static
// type expected at Position. Position is -1 for return values.
//
// When the tags agree but the payload does not convert, as with two
// pointer types sharing bus.TypePointer, ExpectedGo and ActualGo name the
// Go types involved.
type TypeMismatchError struct {
	Position   int
	Expected   bus.Type
	Actual     bus.Type
	ExpectedGo string
	ActualGo   string
}

func (e *TypeMismatchError) Error() string {
	expected, actual := e.Expected.String(), e.Actual.String()
	if e.ExpectedGo != "" {
		expected += " (" + e.ExpectedGo + ")"
		actual += " (" + e.ActualGo + ")"
	}
	if e.Position < 0 {
		return fmt.Sprintf("return value: expected %s, got %s", expected, actual)
	}
	return fmt.Sprintf("value %d: expected %s, got %s", e.Position, expected, actual)
}

// Is allows errors.Is to match TypeMismatchError with ErrMarshal.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrMarshal
}
