package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarValues(t *testing.T) {
	b, ok := BoolValue(true).AsBool()
	require.True(t, ok)
	assert.True(t, b)

	i, ok := Int64Value(-7).AsInt64()
	require.True(t, ok)
	assert.Equal(t, int64(-7), i)

	u, ok := Uint64Value(1<<63 + 1).AsUint64()
	require.True(t, ok)
	assert.Equal(t, uint64(1<<63+1), u)

	f, ok := Float64Value(2.5).AsFloat64()
	require.True(t, ok)
	assert.Equal(t, 2.5, f)

	s, ok := StringValue("whee").AsString()
	require.True(t, ok)
	assert.Equal(t, "whee", s)
}

func TestAccessorsRejectOtherTags(t *testing.T) {
	v := StringValue("4")
	_, ok := v.AsInt64()
	assert.False(t, ok)
	_, ok = v.AsBool()
	assert.False(t, ok)
	_, ok = v.AsObject()
	assert.False(t, ok)
	_, ok = Int64Value(4).AsUint64()
	assert.False(t, ok)
}

func TestZeroValue(t *testing.T) {
	tests := []struct {
		typ  Type
		want Value
	}{
		{TypeNone, NoneValue()},
		{TypeBool, BoolValue(false)},
		{TypeInt64, Int64Value(0)},
		{TypeUint64, Uint64Value(0)},
		{TypeFloat64, Float64Value(0)},
		{TypeString, StringValue("")},
		{TypeObject, ObjectValue(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.typ.Name(), func(t *testing.T) {
			assert.Equal(t, tt.want, ZeroValue(tt.typ))
		})
	}
	assert.False(t, ZeroValue(TypeInvalid).IsValid())
}

func TestValueHolds(t *testing.T) {
	parent := newTestType(t)
	child := newChildType(t, parent)

	obj := NewObject(child, nil)
	defer obj.Dispose()
	v := ObjectValue(obj)

	assert.True(t, v.Holds(child))
	assert.True(t, v.Holds(parent))
	assert.True(t, v.Holds(TypeObject))
	assert.False(t, v.Holds(TypeString))

	p := NewObject(parent, nil)
	defer p.Dispose()
	assert.False(t, ObjectValue(p).Holds(child), "parent instance is not a child")

	// A nil object is accepted for any object type
	assert.True(t, ObjectValue(nil).Holds(child))
	assert.False(t, ObjectValue(nil).Holds(TypeString))
}

func TestObjectValueNil(t *testing.T) {
	v := ObjectValue(nil)
	assert.Equal(t, TypeObject, v.Type())
	o, ok := v.AsObject()
	assert.True(t, ok)
	assert.Nil(t, o)
}

func TestPointerValue(t *testing.T) {
	type payload struct{ n int }
	p := &payload{n: 3}
	got, ok := PointerValue(p).AsPointer()
	require.True(t, ok)
	assert.Same(t, p, got)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "none", NoneValue().String())
	assert.Equal(t, `string("x")`, StringValue("x").String())
	assert.Equal(t, "uint64(8)", Uint64Value(8).String())
	assert.Equal(t, "<invalid>", Value{}.String())
}

func TestQuarks(t *testing.T) {
	assert.Equal(t, Quark(0), QuarkFromString(""))

	name := uniqueName(t, "detail")
	assert.Equal(t, Quark(0), QuarkTryString(name), "not interned yet")

	q := QuarkFromString(name)
	require.NotZero(t, q)
	assert.Equal(t, q, QuarkFromString(name))
	assert.Equal(t, q, QuarkTryString(name))
	assert.Equal(t, name, q.String())
	assert.NotEqual(t, q, QuarkFromString(name+"-other"))
}
