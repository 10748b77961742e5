package bus

import "errors"

// Sentinel errors for the bus.
var (
	// ErrUnknownSignal is returned when a signal id or name does not exist
	// on the instance's type.
	ErrUnknownSignal = errors.New("unknown signal")

	// ErrDetailNotAllowed is returned when a detail is supplied for a
	// signal registered without SignalDetailed.
	ErrDetailNotAllowed = errors.New("signal does not accept details")

	// ErrDisposed is returned for operations on a disposed object.
	ErrDisposed = errors.New("object disposed")

	// ErrHandlerNotFound is returned when disconnecting a handler that is
	// not connected to the instance.
	ErrHandlerNotFound = errors.New("handler not found")

	// ErrNilClosure is returned when connecting a closure without Invoke.
	ErrNilClosure = errors.New("closure cannot be nil")

	// ErrArgumentCount is returned when an emission carries the wrong
	// number of arguments.
	ErrArgumentCount = errors.New("wrong number of arguments")

	// ErrArgumentType is returned when an emission argument does not hold
	// the registered parameter type.
	ErrArgumentType = errors.New("argument type mismatch")

	// ErrReturnType is returned when a handler returns a value of the
	// wrong type.
	ErrReturnType = errors.New("return type mismatch")

	// ErrHandlerPanic is matched by *PanicError.
	ErrHandlerPanic = errors.New("handler panicked")

	// ErrHooksDisabled is returned when adding a hook to a signal
	// registered with SignalNoHooks.
	ErrHooksDisabled = errors.New("signal does not accept emission hooks")

	// ErrHookNotFound is returned when removing an unknown hook.
	ErrHookNotFound = errors.New("emission hook not found")
)

// PanicError wraps a panic raised by a handler during emission.
type PanicError struct {
	// Signal is the name of the signal being emitted.
	Signal string

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace at the time of the panic.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return "handler panic during emission of " + e.Signal
}

// Is allows errors.Is to match PanicError with ErrHandlerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrHandlerPanic
}
