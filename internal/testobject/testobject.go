// Package testobject declares a small object type with a few signals, used
// by tests and the demo binary.
package testobject

import (
	"sync"

	"github.com/zoobzio/signalman"
	"github.com/zoobzio/signalman/bus"
)

// elseDetail is the detail that doubles the contribution of a handler.
const elseDetail = "else"

// TestObject is an instance of the "TestObject" type.
type TestObject struct {
	*bus.Object
}

var (
	typeOnce sync.Once
	typ      bus.Type
)

// Type registers the TestObject type on first use.
func Type() bus.Type {
	typeOnce.Do(func() {
		typ = bus.RegisterType(bus.TypeInfo{
			Name:   "TestObject",
			Parent: bus.TypeObject,
			Signals: []bus.SignalSpec{
				Something.Build(),
				Nothing.Build(),
				Ping.Build(),
				ShouldClose.Build(),
				Changed.Build(),
			},
		})
	})
	return typ
}

// New creates a TestObject.
func New() *TestObject {
	o := &TestObject{}
	o.Object = bus.NewObject(Type(), o)
	return o
}

// StaticType implements signalman.Instance.
func (*TestObject) StaticType() bus.Type { return Type() }

// weightedSum adds handler returns, doubling those of "else" emissions.
func weightedSum(hint signalman.Hint, total, next uint64) (uint64, bool) {
	if hint.DetailName() == elseDetail {
		next *= 2
	}
	return total + next, true
}

var (
	// Something carries a string and sums the handlers' uint64 returns.
	Something = signalman.Define[*TestObject]("something",
		signalman.Shape1(signalman.String), signalman.Returns(signalman.Uint64)).
		WithFlags(bus.SignalRunLast | bus.SignalDetailed).
		WithAccumulator(weightedSum)

	// SomethingElse is Something with the "else" detail.
	SomethingElse = Something.Detailed(elseDetail)

	// Nothing carries a string and returns nothing.
	Nothing = signalman.Define[*TestObject]("nothing",
		signalman.Shape1(signalman.String), signalman.Void()).
		WithFlags(bus.SignalRunLast)

	// Ping has no arguments and no return.
	Ping = signalman.Define[*TestObject]("ping", signalman.NoArgs(), signalman.Void()).
		WithFlags(bus.SignalRunFirst | bus.SignalAction)

	// ShouldClose asks handlers whether to close. The first true wins and
	// the class handler answers false when nobody objects.
	ShouldClose = signalman.Define[*TestObject]("should-close",
		signalman.NoArgs(), signalman.Returns(signalman.Bool)).
		WithFlags(bus.SignalRunLast).
		WithAccumulator(signalman.TrueHandled()).
		WithClassHandler(func(*TestObject, signalman.Unit) bool { return false })

	// Changed reports a property change; the property name is the detail.
	Changed = signalman.Define[*TestObject]("changed",
		signalman.Shape2(signalman.String, signalman.Int64), signalman.Void()).
		WithFlags(bus.SignalRunFirst | bus.SignalDetailed | bus.SignalNoRecurse)
)

// Something emits Something, with the "else" detail when withElse is set.
func (o *TestObject) Something(s string, withElse bool) (uint64, error) {
	args := signalman.Tuple1(s)
	if withElse {
		return SomethingElse.Emit(o, args)
	}
	return Something.Emit(o, args)
}

// Nothing emits Nothing.
func (o *TestObject) Nothing(s string) error {
	_, err := Nothing.Emit(o, signalman.Tuple1(s))
	return err
}

// Ping emits Ping.
func (o *TestObject) Ping() error {
	_, err := Ping.Emit(o, signalman.Unit{})
	return err
}

// ShouldClose emits ShouldClose.
func (o *TestObject) ShouldClose() (bool, error) {
	return ShouldClose.Emit(o, signalman.Unit{})
}

// Change emits Changed with property as the detail.
func (o *TestObject) Change(property string, value int64) error {
	_, err := Changed.Details().WithDetail(bus.QuarkFromString(property)).
		Emit(o, signalman.Tuple2(property, value))
	return err
}
