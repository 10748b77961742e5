package signalman

import "github.com/zoobzio/signalman/bus"

// Result converts the return value of a signal.
type Result[R any] interface {
	// Type returns the registered return tag, bus.TypeNone for void.
	Type() bus.Type

	// ToValueOption converts a handler's return. The boolean is false when
	// the handler produces no value.
	ToValueOption(r R) (bus.Value, bool)

	// FromValue converts the accumulated value of an emission. ok is false
	// when the emission produced no value.
	FromValue(v bus.Value, ok bool) (R, error)
}

type voidResult struct{}

// Void is the result of signals that return nothing.
func Void() Result[Unit] { return voidResult{} }

func (voidResult) Type() bus.Type                          { return bus.TypeNone }
func (voidResult) ToValueOption(Unit) (bus.Value, bool)    { return bus.Value{}, false }
func (voidResult) FromValue(bus.Value, bool) (Unit, error) { return Unit{}, nil }

type codecResult[R any] struct {
	codec Codec[R]
}

// Returns is the result of signals returning values of codec's type.
func Returns[R any](codec Codec[R]) Result[R] {
	return codecResult[R]{codec}
}

func (r codecResult[R]) Type() bus.Type { return r.codec.Type() }

func (r codecResult[R]) ToValueOption(v R) (bus.Value, bool) {
	return r.codec.Value(v), true
}

// FromValue maps a missing value to the zero R.
func (r codecResult[R]) FromValue(v bus.Value, ok bool) (R, error) {
	var zero R
	if !ok || !v.IsValid() {
		return zero, nil
	}
	out, converted := r.codec.From(v)
	if !converted {
		return zero, r.codec.mismatch(-1, v)
	}
	return out, nil
}
