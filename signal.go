package signalman

import (
	"fmt"
	"sync/atomic"

	"github.com/zoobzio/signalman/bus"
)

// Instance is implemented by typed wrappers around a bus object.
// StaticType must be callable on the nil value of the implementing type.
type Instance interface {
	Base() *bus.Object
	StaticType() bus.Type
}

// Handler receives the emitting instance and the typed arguments.
type Handler[O Instance, A, R any] func(this O, args A) R

// Signal is the static description of a signal on instances of O with
// argument tuple A and return R. Declare signals as package variables:
//
//	var Changed = signalman.Define[*Thing]("changed",
//		signalman.Shape1(signalman.String), signalman.Void()).
//		WithFlags(bus.SignalRunLast | bus.SignalDetailed)
//
// and register them through Build when registering O's type.
type Signal[O Instance, A, R any] struct {
	name        string
	args        Shape[A]
	ret         Result[R]
	flags       bus.SignalFlags
	accumulator Accumulator[R]
	class       Handler[O, A, R]
	id          atomic.Uint32
	sealed      atomic.Bool // set by Build and ID
}

// Define declares a signal. The returned descriptor is configured with the
// With methods before registration and is immutable afterwards: the With
// methods panic once Build or ID has been called.
func Define[O Instance, A, R any](name string, args Shape[A], ret Result[R]) *Signal[O, A, R] {
	return &Signal[O, A, R]{name: name, args: args, ret: ret}
}

// WithFlags sets the registration flags.
func (s *Signal[O, A, R]) WithFlags(flags bus.SignalFlags) *Signal[O, A, R] {
	s.mustBeOpen("WithFlags")
	s.flags = flags
	return s
}

// WithAccumulator sets the fold combining handler returns.
func (s *Signal[O, A, R]) WithAccumulator(acc Accumulator[R]) *Signal[O, A, R] {
	s.mustBeOpen("WithAccumulator")
	s.accumulator = acc
	return s
}

// WithClassHandler sets the per-type default handler, run at the slot
// selected by the RunFirst, RunLast and RunCleanup flags.
func (s *Signal[O, A, R]) WithClassHandler(h Handler[O, A, R]) *Signal[O, A, R] {
	s.mustBeOpen("WithClassHandler")
	s.class = h
	return s
}

func (s *Signal[O, A, R]) mustBeOpen(method string) {
	if s.sealed.Load() {
		panic(fmt.Sprintf("signalman: %s on signal %q after registration", method, s.name))
	}
}

// Name returns the signal name.
func (s *Signal[O, A, R]) Name() string { return s.name }

// Flags returns the registration flags.
func (s *Signal[O, A, R]) Flags() bus.SignalFlags { return s.flags }

// Owner returns the type the signal is registered on.
func (s *Signal[O, A, R]) Owner() bus.Type {
	var zero O
	return zero.StaticType()
}

// Arguments returns the argument shape.
func (s *Signal[O, A, R]) Arguments() Shape[A] { return s.args }

// Return returns the result converter.
func (s *Signal[O, A, R]) Return() Result[R] { return s.ret }

// ID resolves the signal on its owner type. The lookup happens once.
// Panics if the signal was never registered: the descriptor and the type
// registration disagree.
func (s *Signal[O, A, R]) ID() bus.SignalID {
	if id := s.id.Load(); id != 0 {
		return bus.SignalID(id)
	}
	owner := s.Owner()
	id, ok := bus.LookupSignal(s.name, owner)
	if !ok {
		panic(fmt.Sprintf("signalman: signal %q is not registered on %s: %v", s.name, owner, ErrUnknownSignal))
	}
	s.sealed.Store(true)
	s.id.Store(uint32(id))
	return id
}

// Build returns the registration record of the signal.
func (s *Signal[O, A, R]) Build() bus.SignalSpec {
	s.sealed.Store(true)
	spec := bus.SignalSpec{
		Name:   s.name,
		Params: s.args.StaticTypes(),
		Return: s.ret.Type(),
		Flags:  s.flags,
	}
	if s.accumulator != nil {
		spec.Accumulator = s.accumulator.fold(s.ret)
	}
	if s.class != nil {
		spec.ClassHandler = bus.ClassHandler(s.closure(s.class))
	}
	return spec
}

// Builder returns the registration record after fn customized it.
func (s *Signal[O, A, R]) Builder(fn func(spec *bus.SignalSpec)) bus.SignalSpec {
	spec := s.Build()
	fn(&spec)
	return spec
}

// Signal returns s; it makes *Signal a Descriptor.
func (s *Signal[O, A, R]) Signal() *Signal[O, A, R] { return s }

// Detail returns 0: the bare signal carries no detail.
func (s *Signal[O, A, R]) Detail() bus.Quark { return 0 }

// Details returns the routing of the bare signal.
func (s *Signal[O, A, R]) Details() Details[O, A, R] {
	return Details[O, A, R]{signal: s}
}

// Detailed returns a view of s fixed to detail.
// Panics if s was not declared with bus.SignalDetailed.
func (s *Signal[O, A, R]) Detailed(detail string) Detailed[O, A, R] {
	if !s.flags.Has(bus.SignalDetailed) {
		panic(fmt.Sprintf("signalman: signal %q does not accept details", s.name))
	}
	if detail == "" {
		panic(fmt.Sprintf("signalman: empty detail for signal %q", s.name))
	}
	return Detailed[O, A, R]{signal: s, detail: bus.QuarkFromString(detail)}
}

func (s *Signal[O, A, R]) String() string {
	return fmt.Sprintf("%s::%s", s.Owner(), s.name)
}

// split converts the values of an emission into the instance and the
// typed arguments.
func (s *Signal[O, A, R]) split(values []bus.Value) (O, A, error) {
	var (
		this O
		args A
	)
	if len(values) == 0 {
		return this, args, &ArityMismatchError{Expected: s.args.Arity() + 1, Actual: 0}
	}
	obj, ok := values[0].AsObject()
	if !ok || obj == nil {
		return this, args, fmt.Errorf("signal %s: missing instance: %w", s.name, ErrMarshal)
	}
	if this, ok = obj.Self().(O); !ok {
		return this, args, fmt.Errorf("signal %s: instance %s is not a %T: %w", s.name, obj, this, ErrMarshal)
	}
	args, err := s.args.FromValues(values[1:])
	if err != nil {
		return this, args, fmt.Errorf("signal %s: %w", s.name, err)
	}
	return this, args, nil
}

// closure adapts a typed handler to the untyped invoke function.
func (s *Signal[O, A, R]) closure(h Handler[O, A, R]) func([]bus.Value) (bus.Value, error) {
	return func(values []bus.Value) (bus.Value, error) {
		this, args, err := s.split(values)
		if err != nil {
			return bus.Value{}, err
		}
		v, ok := s.ret.ToValueOption(h(this, args))
		if !ok {
			return bus.NoneValue(), nil
		}
		return v, nil
	}
}
