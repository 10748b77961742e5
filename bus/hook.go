package bus

import (
	"fmt"
	"sync/atomic"
)

// HookID identifies an emission hook.
type HookID uint64

var nextHookID atomic.Uint64

// EmissionHook runs on every emission of a signal, on any instance, before
// the connected handlers. Returning false removes the hook.
type EmissionHook func(hint InvocationHint, values []Value) bool

type emissionHook struct {
	id     HookID
	detail Quark
	fn     EmissionHook
}

// AddEmissionHook installs hook for signal id. A non-zero detail restricts
// it to emissions carrying that detail.
func AddEmissionHook(id SignalID, detail Quark, hook EmissionHook) (HookID, error) {
	r := reg()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addHookLocked(id, detail, hook)
}

func (r *registry) addHookLocked(id SignalID, detail Quark, hook EmissionHook) (HookID, error) {
	if id == 0 || int(id) >= len(r.signals) {
		return 0, fmt.Errorf("add hook to signal %d: %w", id, ErrUnknownSignal)
	}
	sig := r.signals[id]
	if sig.flags.Has(SignalNoHooks) {
		return 0, fmt.Errorf("add hook to %s: %w", sig.name, ErrHooksDisabled)
	}
	if detail != 0 && !sig.flags.Has(SignalDetailed) {
		return 0, fmt.Errorf("add hook to %s::%s: %w", sig.name, detail, ErrDetailNotAllowed)
	}
	h := &emissionHook{
		id:     HookID(nextHookID.Add(1)),
		detail: detail,
		fn:     hook,
	}
	r.hooks[id] = append(r.hooks[id], h)
	return h.id, nil
}

// RemoveEmissionHook removes a hook installed with AddEmissionHook.
func RemoveEmissionHook(id SignalID, hookID HookID) error {
	r := reg()
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.removeHookLocked(id, hookID) {
		return fmt.Errorf("remove hook %d from signal %d: %w", hookID, id, ErrHookNotFound)
	}
	return nil
}

func (r *registry) removeHookLocked(id SignalID, hookID HookID) bool {
	hooks := r.hooks[id]
	for i, h := range hooks {
		if h.id == hookID {
			r.hooks[id] = append(hooks[:i:i], hooks[i+1:]...)
			if len(r.hooks[id]) == 0 {
				delete(r.hooks, id)
			}
			return true
		}
	}
	return false
}

func (r *registry) hooksFor(id SignalID, detail Quark) []*emissionHook {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*emissionHook
	for _, h := range r.hooks[id] {
		if h.detail == 0 || h.detail == detail {
			out = append(out, h)
		}
	}
	return out
}

func (e *emission) runHooks() error {
	r := reg()
	for _, h := range r.hooksFor(e.signal.id, e.hint.Detail) {
		e.hint.Phase = PhaseRunFirst
		keep, err := e.callHook(h)
		if err != nil {
			return err
		}
		if !keep {
			r.mu.Lock()
			r.removeHookLocked(e.signal.id, h.id)
			r.mu.Unlock()
		}
	}
	return nil
}

func (e *emission) callHook(h *emissionHook) (keep bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = e.recovered(rec)
		}
	}()
	return h.fn(e.hint, e.values), nil
}

// ObserverFunc receives every emission of the observed signals.
type ObserverFunc func(hint InvocationHint, values []Value)

// Observer is a set of emission hooks sharing one callback.
// Call Close() to remove them all.
type Observer struct {
	fn      ObserverFunc
	signals map[SignalID]struct{} // nil = all signals, non-nil = whitelist
	hooks   map[SignalID]HookID
	active  bool
}

// Observe installs fn as an emission hook on the given signals.
// If no signals are provided, every signal is observed, including signals
// registered later. Signals registered with SignalNoHooks are skipped.
func Observe(fn ObserverFunc, signals ...SignalID) *Observer {
	r := reg()
	r.mu.Lock()
	defer r.mu.Unlock()

	o := &Observer{
		fn:     fn,
		hooks:  make(map[SignalID]HookID),
		active: true,
	}

	// Build whitelist if signals provided
	if len(signals) > 0 {
		o.signals = make(map[SignalID]struct{}, len(signals))
		for _, sig := range signals {
			o.signals[sig] = struct{}{}
		}
	}

	for _, sig := range r.signals[1:] {
		o.attachLocked(r, sig.id)
	}
	r.observers = append(r.observers, o)
	return o
}

func (o *Observer) attachLocked(r *registry, id SignalID) {
	if !o.active {
		return
	}
	if o.signals != nil {
		if _, ok := o.signals[id]; !ok {
			return
		}
	}
	if _, attached := o.hooks[id]; attached {
		return
	}
	hookID, err := r.addHookLocked(id, 0, func(hint InvocationHint, values []Value) bool {
		o.fn(hint, values)
		return true
	})
	if err != nil {
		return
	}
	o.hooks[id] = hookID
}

// attachObserversLocked attaches all active observers to a new signal.
// Must be called while holding r.mu write lock.
func (r *registry) attachObserversLocked(id SignalID) {
	for _, o := range r.observers {
		o.attachLocked(r, id)
	}
}

// Close removes every hook of the observer.
// Safe to call multiple times; subsequent calls are no-ops.
func (o *Observer) Close() {
	r := reg()
	r.mu.Lock()
	defer r.mu.Unlock()

	if !o.active {
		return
	}
	o.active = false
	for id, hookID := range o.hooks {
		r.removeHookLocked(id, hookID)
	}
	o.hooks = nil

	for i, obs := range r.observers {
		if obs == o {
			// Swap with last element and truncate
			lastIdx := len(r.observers) - 1
			r.observers[i] = r.observers[lastIdx]
			r.observers = r.observers[:lastIdx]
			break
		}
	}
}

// Signals returns the number of signals the observer is attached to.
func (o *Observer) Signals() int {
	r := reg()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(o.hooks)
}
