package bus

import (
	"fmt"
	"runtime/debug"
	"sync"
)

var emissionPool = sync.Pool{
	New: func() any {
		return &emission{}
	},
}

// emission is the in-flight state of one Emit call.
// Emissions are pooled internally to reduce allocations.
type emission struct {
	object *Object
	signal *signalNode
	hint   InvocationHint
	values []Value
	before []*handler
	after  []*handler
	total  Value
}

func newEmission(o *Object, sig *signalNode, detail Quark, args []Value) *emission {
	e := emissionPool.Get().(*emission) //nolint:errcheck // Pool always returns *emission
	e.object = o
	e.signal = sig
	e.hint = InvocationHint{Signal: sig.id, Detail: detail}
	e.values = append(e.values[:0], ObjectValue(o))
	e.values = append(e.values, args...)
	e.before, e.after = o.list.matching(sig.id, detail, e.before[:0], e.after[:0])
	e.total = ZeroValue(sig.ret)
	return e
}

func (e *emission) release() {
	clear(e.values)
	clear(e.before)
	clear(e.after)
	e.object = nil
	e.signal = nil
	e.total = Value{}
	emissionPool.Put(e)
}

// Emit invokes the handlers of signal id on this instance and returns the
// accumulated value. The boolean is false for signals returning TypeNone.
//
// Order: RunFirst class handler, emission hooks, handlers connected without
// after (connection order), RunLast class handler, handlers connected with
// after, RunCleanup class handler. An accumulator returning false skips the
// remaining handlers; the cleanup class handler still runs.
func (o *Object) Emit(id SignalID, detail Quark, args ...Value) (Value, bool, error) {
	if o.Disposed() {
		return Value{}, false, fmt.Errorf("emit on %s: %w", o, ErrDisposed)
	}
	sig := reg().signal(id)
	if sig == nil || !o.typ.IsA(sig.owner) {
		return Value{}, false, fmt.Errorf("emit signal %d on %s: %w", id, o, ErrUnknownSignal)
	}
	if detail != 0 && !sig.flags.Has(SignalDetailed) {
		return Value{}, false, fmt.Errorf("emit %s::%s on %s: %w", sig.name, detail, o, ErrDetailNotAllowed)
	}
	if len(args) != len(sig.params) {
		return Value{}, false, fmt.Errorf("emit %s: expected %d arguments, got %d: %w",
			sig.name, len(sig.params), len(args), ErrArgumentCount)
	}
	for i, p := range sig.params {
		if !args[i].Holds(p) {
			return Value{}, false, fmt.Errorf("emit %s: argument %d: expected %s, got %s: %w",
				sig.name, i, p, args[i].Type(), ErrArgumentType)
		}
	}

	e := newEmission(o, sig, detail, args)
	defer e.release()

	reg().emissions.Add(1)
	if err := e.run(); err != nil {
		return Value{}, false, err
	}
	if sig.ret == TypeNone {
		return Value{}, false, nil
	}
	return e.total, true, nil
}

func (e *emission) run() error {
	sig := e.signal
	class := sig.class != nil

	if class && sig.flags.Has(SignalRunFirst) {
		cont, err := e.invoke(PhaseRunFirst, sig.class)
		if err != nil {
			return err
		}
		if !cont {
			return e.cleanup()
		}
	}

	if !sig.flags.Has(SignalNoHooks) {
		if err := e.runHooks(); err != nil {
			return err
		}
	}

	cont, err := e.invokeAll(PhaseRunFirst, e.before)
	if err != nil {
		return err
	}
	if !cont {
		return e.cleanup()
	}

	if class && sig.flags.Has(SignalRunLast) {
		cont, err = e.invoke(PhaseRunLast, sig.class)
		if err != nil {
			return err
		}
		if !cont {
			return e.cleanup()
		}
	}

	if _, err = e.invokeAll(PhaseRunLast, e.after); err != nil {
		return err
	}
	return e.cleanup()
}

func (e *emission) invokeAll(phase Phase, handlers []*handler) (bool, error) {
	for _, h := range handlers {
		// A handler disconnected by an earlier handler is skipped
		if h.removed.Load() {
			continue
		}
		cont, err := e.invoke(phase, h.closure.Invoke)
		if err != nil || !cont {
			return cont, err
		}
	}
	return true, nil
}

func (e *emission) cleanup() error {
	sig := e.signal
	if sig.class == nil || !sig.flags.Has(SignalRunCleanup) {
		return nil
	}
	_, err := e.invoke(PhaseRunCleanup, sig.class)
	return err
}

// invoke calls fn and folds its return value into the total.
func (e *emission) invoke(phase Phase, fn func([]Value) (Value, error)) (bool, error) {
	e.hint.Phase = phase
	ret, err := e.call(fn)
	if err != nil {
		return false, err
	}
	reg().handlersInvoked.Add(1)

	sig := e.signal
	if sig.ret == TypeNone || phase == PhaseRunCleanup {
		return true, nil
	}
	if !ret.IsValid() || ret.IsNone() {
		ret = ZeroValue(sig.ret)
	}
	if !ret.Holds(sig.ret) {
		return false, fmt.Errorf("emit %s: handler returned %s, expected %s: %w",
			sig.name, ret.Type(), sig.ret, ErrReturnType)
	}
	if sig.accumulator == nil {
		e.total = ret
		return true, nil
	}
	cont, err := sig.accumulator(e.hint, &e.total, ret)
	if err != nil {
		return false, fmt.Errorf("emit %s: accumulate: %w", sig.name, err)
	}
	return cont, nil
}

func (e *emission) call(fn func([]Value) (Value, error)) (ret Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = e.recovered(r)
		}
	}()
	return fn(e.values)
}

func (e *emission) recovered(r any) error {
	reg().handlerPanics.Add(1)
	name := e.signal.name
	Logger().Error("handler panicked", "signal", name, "object", e.object.String(), "panic", r)
	if h := loadConfig().panicHandler; h != nil {
		h(name, r)
	}
	return &PanicError{Signal: name, Value: r, Stack: string(debug.Stack())}
}
