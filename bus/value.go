package bus

import (
	"fmt"
	"math"
)

// Value is a runtime-tagged container holding exactly one value.
// The zero Value is invalid and holds nothing.
type Value struct {
	typ    Type
	scalar uint64
	str    string
	ref    any
}

// NoneValue returns the unit value.
func NoneValue() Value { return Value{typ: TypeNone} }

// BoolValue wraps a bool.
func BoolValue(b bool) Value {
	v := Value{typ: TypeBool}
	if b {
		v.scalar = 1
	}
	return v
}

// Int64Value wraps an int64.
func Int64Value(i int64) Value { return Value{typ: TypeInt64, scalar: uint64(i)} }

// Uint64Value wraps a uint64.
func Uint64Value(u uint64) Value { return Value{typ: TypeUint64, scalar: u} }

// Float64Value wraps a float64.
func Float64Value(f float64) Value { return Value{typ: TypeFloat64, scalar: math.Float64bits(f)} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{typ: TypeString, str: s} }

// PointerValue wraps an opaque pointer. The bus never looks inside it.
func PointerValue(p any) Value { return Value{typ: TypePointer, ref: p} }

// ObjectValue wraps an object reference. A nil object is tagged TypeObject
// and is accepted wherever any object type is expected.
func ObjectValue(o *Object) Value {
	if o == nil {
		return Value{typ: TypeObject}
	}
	return Value{typ: o.typ, ref: o}
}

// ZeroValue returns the default value for t: false, 0, "", a nil pointer
// or a nil object. TypeNone yields NoneValue.
func ZeroValue(t Type) Value {
	switch {
	case t == TypeInvalid:
		return Value{}
	case t.IsObject():
		return Value{typ: TypeObject}
	default:
		return Value{typ: t}
	}
}

// Type returns the runtime tag.
func (v Value) Type() Type { return v.typ }

// IsValid reports whether the value holds anything, including unit.
func (v Value) IsValid() bool { return v.typ != TypeInvalid }

// IsNone reports whether the value is unit.
func (v Value) IsNone() bool { return v.typ == TypeNone }

// Holds reports whether v may be used where a t is expected.
func (v Value) Holds(t Type) bool {
	if v.typ == TypeObject && v.ref == nil && t.IsObject() {
		return true
	}
	return v.typ.IsA(t)
}

// AsBool returns the bool payload.
func (v Value) AsBool() (bool, bool) {
	if v.typ != TypeBool {
		return false, false
	}
	return v.scalar != 0, true
}

// AsInt64 returns the int64 payload.
func (v Value) AsInt64() (int64, bool) {
	if v.typ != TypeInt64 {
		return 0, false
	}
	return int64(v.scalar), true
}

// AsUint64 returns the uint64 payload.
func (v Value) AsUint64() (uint64, bool) {
	if v.typ != TypeUint64 {
		return 0, false
	}
	return v.scalar, true
}

// AsFloat64 returns the float64 payload.
func (v Value) AsFloat64() (float64, bool) {
	if v.typ != TypeFloat64 {
		return 0, false
	}
	return math.Float64frombits(v.scalar), true
}

// AsString returns the string payload.
func (v Value) AsString() (string, bool) {
	if v.typ != TypeString {
		return "", false
	}
	return v.str, true
}

// AsPointer returns the pointer payload.
func (v Value) AsPointer() (any, bool) {
	if v.typ != TypePointer {
		return nil, false
	}
	return v.ref, true
}

// AsObject returns the object payload, which may be nil.
func (v Value) AsObject() (*Object, bool) {
	if !v.typ.IsObject() {
		return nil, false
	}
	o, _ := v.ref.(*Object)
	return o, true
}

// String formats the value for logs.
func (v Value) String() string {
	switch v.typ {
	case TypeInvalid:
		return "<invalid>"
	case TypeNone:
		return "none"
	case TypeBool:
		b, _ := v.AsBool()
		return fmt.Sprintf("bool(%t)", b)
	case TypeInt64:
		return fmt.Sprintf("int64(%d)", int64(v.scalar))
	case TypeUint64:
		return fmt.Sprintf("uint64(%d)", v.scalar)
	case TypeFloat64:
		f, _ := v.AsFloat64()
		return fmt.Sprintf("float64(%g)", f)
	case TypeString:
		return fmt.Sprintf("string(%q)", v.str)
	case TypePointer:
		return fmt.Sprintf("pointer(%p)", v.ref)
	default:
		if v.ref == nil {
			return fmt.Sprintf("%s(nil)", v.typ.Name())
		}
		return v.ref.(*Object).String()
	}
}
