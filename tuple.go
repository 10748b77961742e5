package signalman

import "github.com/zoobzio/signalman/bus"

//go:generate go run ./internal/gentuple -n 12 -o tuple_gen.go

// Unit is the empty tuple: the arguments of a zero-argument signal and the
// return of a void signal. Args1 through Args12 and their shapes live in
// tuple_gen.go.
type Unit struct{}

// Shape is the marshaler of an argument tuple type A.
type Shape[A any] interface {
	// Arity returns the number of elements in A.
	Arity() int

	// StaticTypes returns the expected type tag of each position, used
	// when registering a signal.
	StaticTypes() []bus.Type

	// FromValues converts values into A. It fails with
	// *ArityMismatchError or *TypeMismatchError without converting
	// anything.
	FromValues(values []bus.Value) (A, error)

	// ToValues converts args into values in position order.
	ToValues(args A) []bus.Value
}

// checkValues verifies arity and every position's tag before conversion.
func checkValues(values []bus.Value, types ...bus.Type) error {
	if len(values) != len(types) {
		return &ArityMismatchError{Expected: len(types), Actual: len(values)}
	}
	for i, t := range types {
		if !values[i].Holds(t) {
			return &TypeMismatchError{Position: i, Expected: t, Actual: values[i].Type()}
		}
	}
	return nil
}

// convert runs a codec on an already checked position.
func convert[T any](c Codec[T], values []bus.Value, i int) (T, error) {
	v, ok := c.From(values[i])
	if !ok {
		return v, c.mismatch(i, values[i])
	}
	return v, nil
}

type shape0 struct{}

// NoArgs returns the shape of zero-argument signals.
func NoArgs() Shape[Unit] { return shape0{} }

func (shape0) Arity() int              { return 0 }
func (shape0) StaticTypes() []bus.Type { return nil }

func (shape0) FromValues(values []bus.Value) (Unit, error) {
	if len(values) != 0 {
		return Unit{}, &ArityMismatchError{Expected: 0, Actual: len(values)}
	}
	return Unit{}, nil
}

func (shape0) ToValues(Unit) []bus.Value { return nil }
