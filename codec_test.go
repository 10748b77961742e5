package signalman

import (
	"errors"
	"testing"

	"github.com/zoobzio/signalman/bus"
)

func TestBuiltinCodecs(t *testing.T) {
	if v, ok := String.From(String.Value("whee")); !ok || v != "whee" {
		t.Errorf("String round trip: got %q, %v", v, ok)
	}
	if v, ok := Int.From(Int.Value(-3)); !ok || v != -3 {
		t.Errorf("Int round trip: got %d, %v", v, ok)
	}
	if Int.Type() != bus.TypeInt64 {
		t.Errorf("Int is carried as %s, expected int64", Int.Type())
	}
	if v, ok := Uint.From(Uint.Value(7)); !ok || v != 7 {
		t.Errorf("Uint round trip: got %d, %v", v, ok)
	}
	if v, ok := Float64.From(Float64.Value(0.5)); !ok || v != 0.5 {
		t.Errorf("Float64 round trip: got %g, %v", v, ok)
	}
	if v, ok := Bool.From(Bool.Value(true)); !ok || !v {
		t.Errorf("Bool round trip: got %v, %v", v, ok)
	}
}

func TestCodecRejectsOtherTags(t *testing.T) {
	if _, ok := Uint64.From(bus.Int64Value(1)); ok {
		t.Error("Uint64 accepted an int64 value")
	}
	if _, ok := String.From(bus.NoneValue()); ok {
		t.Error("String accepted none")
	}
}

func TestPointerCodec(t *testing.T) {
	type payload struct{ n int }
	codec := PointerOf[payload]()

	p := &payload{n: 1}
	got, ok := codec.From(codec.Value(p))
	if !ok || got != p {
		t.Fatalf("expected the same pointer back, got %v, %v", got, ok)
	}

	got, ok = codec.From(codec.Value(nil))
	if !ok || got != nil {
		t.Errorf("expected nil pointer, got %v, %v", got, ok)
	}

	// A pointer of another Go type is rejected
	if _, ok := codec.From(bus.PointerValue(new(int))); ok {
		t.Error("accepted a pointer of the wrong type")
	}
}

func TestPointerMismatchNamesGoTypes(t *testing.T) {
	shape := Shape1(PointerOf[int]())
	name := "not an int"

	_, err := shape.FromValues([]bus.Value{bus.PointerValue(&name)})
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
	if mismatch.ExpectedGo != "*int" || mismatch.ActualGo != "*string" {
		t.Errorf("expected *int/*string, got %q/%q", mismatch.ExpectedGo, mismatch.ActualGo)
	}
	want := "value 0: expected pointer (*int), got pointer (*string)"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	// Differing tags carry no Go detail
	_, err = shape.FromValues([]bus.Value{bus.StringValue("x")})
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
	if mismatch.ExpectedGo != "" || mismatch.ActualGo != "" {
		t.Errorf("unexpected Go detail %q/%q", mismatch.ExpectedGo, mismatch.ActualGo)
	}
}

func TestCustomCodec(t *testing.T) {
	type celsius float64
	codec := NewCodec(bus.TypeFloat64,
		func(v bus.Value) (celsius, bool) {
			f, ok := v.AsFloat64()
			return celsius(f), ok
		},
		func(c celsius) bus.Value { return bus.Float64Value(float64(c)) },
	)
	got, ok := codec.From(codec.Value(21.5))
	if !ok || got != 21.5 {
		t.Errorf("got %v, %v", got, ok)
	}
}
