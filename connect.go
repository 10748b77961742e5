package signalman

import (
	"fmt"

	"github.com/zoobzio/signalman/bus"
)

// Connect registers h on target. The returned id disconnects it.
func (d Details[O, A, R]) Connect(target O, h Handler[O, A, R]) (bus.HandlerID, error) {
	return ConnectClosure(target, d.Normalize(), bus.Closure{Invoke: d.signal.closure(h)})
}

// Emit marshals args, emits on target and converts the accumulated value.
// Marshaling failures inside handlers abort the emission and are returned.
func (d Details[O, A, R]) Emit(target O, args A) (R, error) {
	var zero R
	r := d.Normalize()
	v, ok, err := target.Base().Emit(r.Signal, r.Detail, d.signal.args.ToValues(args)...)
	if err != nil {
		return zero, err
	}
	return d.signal.ret.FromValue(v, ok)
}

// Connect registers h for every emission of s on target.
func (s *Signal[O, A, R]) Connect(target O, h Handler[O, A, R]) (bus.HandlerID, error) {
	return s.Details().Connect(target, h)
}

// ConnectAfter registers h to run after the class handler.
func (s *Signal[O, A, R]) ConnectAfter(target O, h Handler[O, A, R]) (bus.HandlerID, error) {
	return s.Details().After().Connect(target, h)
}

// Emit emits s without a detail.
func (s *Signal[O, A, R]) Emit(target O, args A) (R, error) {
	return s.Details().Emit(target, args)
}

// Connect registers h for emissions carrying d's detail.
func (d Detailed[O, A, R]) Connect(target O, h Handler[O, A, R]) (bus.HandlerID, error) {
	return d.Details().Connect(target, h)
}

// ConnectAfter registers h for d's detail, after the class handler.
func (d Detailed[O, A, R]) ConnectAfter(target O, h Handler[O, A, R]) (bus.HandlerID, error) {
	return d.Details().After().Connect(target, h)
}

// Emit emits s with d's detail.
func (d Detailed[O, A, R]) Emit(target O, args A) (R, error) {
	return d.Details().Emit(target, args)
}

// ConnectClosure registers a raw closure on target at route.
// Bus refusals are returned wrapped in ErrConnectionRejected.
func ConnectClosure(target Instance, route Route, closure bus.Closure) (bus.HandlerID, error) {
	id, err := target.Base().Connect(route.Signal, route.Detail, closure, route.After)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrConnectionRejected, err)
	}
	return id, nil
}

// Disconnect removes the handler id from target.
func Disconnect(target Instance, id bus.HandlerID) error {
	return target.Base().Disconnect(id)
}

// EmitName emits the signal named by spec ("name" or "name::detail") with
// untyped arguments.
func EmitName(target Instance, spec string, args ...bus.Value) (bus.Value, bool, error) {
	obj := target.Base()
	r, ok := ParseRoute(spec, obj.Type(), false)
	if !ok {
		return bus.Value{}, false, fmt.Errorf("emit %q on %s: %w", spec, obj, ErrUnknownSignal)
	}
	return obj.Emit(r.Signal, r.Detail, args...)
}
