package signalman

import "github.com/zoobzio/signalman/bus"

// Hint describes the emission an accumulator runs in.
type Hint struct {
	Signal bus.SignalID
	Detail bus.Quark
	Phase  bus.Phase
}

// DetailName returns the detail string, "" when the emission has none.
func (h Hint) DetailName() string {
	if h.Detail == 0 {
		return ""
	}
	return h.Detail.String()
}

// Accumulator folds next into total and reports whether delivery continues.
// total starts as the zero R for each emission.
type Accumulator[R any] func(hint Hint, total, next R) (R, bool)

// Number is the constraint of Sum.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ReplaceLatest keeps the most recent return, the bus default.
func ReplaceLatest[R any]() Accumulator[R] {
	return func(_ Hint, _, next R) (R, bool) {
		return next, true
	}
}

// Sum adds up every return.
func Sum[N Number]() Accumulator[N] {
	return func(_ Hint, total, next N) (N, bool) {
		return total + next, true
	}
}

// FirstWins keeps the first return and stops delivery.
func FirstWins[R any]() Accumulator[R] {
	return func(_ Hint, _, next R) (R, bool) {
		return next, false
	}
}

// TrueHandled stops delivery at the first handler returning true.
func TrueHandled() Accumulator[bool] {
	return func(_ Hint, _, next bool) (bool, bool) {
		return next, !next
	}
}

// fold adapts a to the bus, converting through ret. A value that does not
// convert aborts the emission.
func (a Accumulator[R]) fold(ret Result[R]) bus.Accumulator {
	return func(hint bus.InvocationHint, total *bus.Value, next bus.Value) (bool, error) {
		t, err := ret.FromValue(*total, true)
		if err != nil {
			return false, err
		}
		n, err := ret.FromValue(next, true)
		if err != nil {
			return false, err
		}
		out, cont := a(Hint(hint), t, n)
		if v, ok := ret.ToValueOption(out); ok {
			*total = v
		}
		return cont, nil
	}
}
