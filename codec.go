package signalman

import (
	"fmt"

	"github.com/zoobzio/signalman/bus"
)

// Codec converts between a Go type T and a bus.Value tagged with Type.
// All built-in codecs (String, Uint64, etc.) are values of Codec[T].
type Codec[T any] struct {
	typ    bus.Type
	typeOf func() bus.Type // resolved on use; set for object codecs
	from   func(bus.Value) (T, bool)
	to     func(T) bus.Value
}

// NewCodec creates a Codec for any type T stored under tag t.
// from must report false when a value cannot be converted.
//
// Example:
//
//	type Celsius float64
//	celsius := signalman.NewCodec(bus.TypeFloat64,
//	    func(v bus.Value) (Celsius, bool) { f, ok := v.AsFloat64(); return Celsius(f), ok },
//	    func(c Celsius) bus.Value { return bus.Float64Value(float64(c)) },
//	)
func NewCodec[T any](t bus.Type, from func(bus.Value) (T, bool), to func(T) bus.Value) Codec[T] {
	return Codec[T]{typ: t, from: from, to: to}
}

// Type returns the static type tag.
func (c Codec[T]) Type() bus.Type {
	if c.typeOf != nil {
		return c.typeOf()
	}
	return c.typ
}

// Value converts v into a bus.Value.
func (c Codec[T]) Value(v T) bus.Value { return c.to(v) }

// From extracts a T from v.
// Returns the value and true on success, or zero value and false otherwise.
func (c Codec[T]) From(v bus.Value) (T, bool) {
	var zero T
	if !v.Holds(c.Type()) {
		return zero, false
	}
	return c.from(v)
}

// mismatch reports that v did not convert at position.
func (c Codec[T]) mismatch(position int, v bus.Value) *TypeMismatchError {
	err := &TypeMismatchError{Position: position, Expected: c.Type(), Actual: v.Type()}
	if v.Holds(c.Type()) {
		var zero T
		err.ExpectedGo = fmt.Sprintf("%T", zero)
		err.ActualGo = payloadType(v)
	}
	return err
}

// payloadType names the Go type carried by a pointer or object value.
func payloadType(v bus.Value) string {
	if p, ok := v.AsPointer(); ok {
		return fmt.Sprintf("%T", p)
	}
	if obj, ok := v.AsObject(); ok && obj != nil {
		if self := obj.Self(); self != nil {
			return fmt.Sprintf("%T", self)
		}
		return fmt.Sprintf("%T", obj)
	}
	return v.Type().String()
}

var (
	// String is the codec for string values.
	String = NewCodec(bus.TypeString, bus.Value.AsString, bus.StringValue)

	// Bool is the codec for bool values.
	Bool = NewCodec(bus.TypeBool, bus.Value.AsBool, bus.BoolValue)

	// Int64 is the codec for int64 values.
	Int64 = NewCodec(bus.TypeInt64, bus.Value.AsInt64, bus.Int64Value)

	// Uint64 is the codec for uint64 values.
	Uint64 = NewCodec(bus.TypeUint64, bus.Value.AsUint64, bus.Uint64Value)

	// Float64 is the codec for float64 values.
	Float64 = NewCodec(bus.TypeFloat64, bus.Value.AsFloat64, bus.Float64Value)

	// Int is the codec for int values, carried as int64.
	Int = NewCodec(bus.TypeInt64,
		func(v bus.Value) (int, bool) {
			i, ok := v.AsInt64()
			return int(i), ok
		},
		func(i int) bus.Value { return bus.Int64Value(int64(i)) },
	)

	// Uint is the codec for uint values, carried as uint64 whatever the
	// platform word size.
	Uint = NewCodec(bus.TypeUint64,
		func(v bus.Value) (uint, bool) {
			u, ok := v.AsUint64()
			return uint(u), ok
		},
		func(u uint) bus.Value { return bus.Uint64Value(uint64(u)) },
	)
)

// PointerOf returns the codec for opaque *T pointers.
func PointerOf[T any]() Codec[*T] {
	return NewCodec(bus.TypePointer,
		func(v bus.Value) (*T, bool) {
			p, ok := v.AsPointer()
			if !ok {
				return nil, false
			}
			if p == nil {
				return nil, true
			}
			t, ok := p.(*T)
			return t, ok
		},
		func(p *T) bus.Value { return bus.PointerValue(p) },
	)
}

// ObjectOf returns the codec for references to instances of O.
// A nil object converts to the zero O. The type tag is resolved on first
// use, so the codec may be declared before O's type is registered.
func ObjectOf[O Instance]() Codec[O] {
	var zero O
	c := NewCodec(bus.TypeObject,
		func(v bus.Value) (O, bool) {
			obj, ok := v.AsObject()
			if !ok {
				return zero, false
			}
			if obj == nil {
				return zero, true
			}
			o, ok := obj.Self().(O)
			return o, ok
		},
		func(o O) bus.Value {
			if any(o) == any(zero) {
				return bus.ObjectValue(nil)
			}
			return bus.ObjectValue(o.Base())
		},
	)
	c.typeOf = zero.StaticType
	return c
}
