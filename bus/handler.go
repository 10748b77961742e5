package bus

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// HandlerID identifies one handler connection. Zero is never returned.
type HandlerID uint64

var nextHandlerID atomic.Uint64

// Closure is a handler as the bus sees it.
// Invoke receives the emitting instance followed by the signal arguments;
// the slice is only valid for the duration of the call. Invalidate, if set,
// runs exactly once when the bus drops the closure, on disconnect or when
// the instance goes away.
type Closure struct {
	Invoke     func(values []Value) (Value, error)
	Invalidate func()
}

type handler struct {
	id      HandlerID
	signal  SignalID
	detail  Quark
	after   bool
	closure Closure
	removed atomic.Bool
}

// matches applies the routing rule: a handler without a detail receives
// every emission, a handler with a detail only emissions carrying it.
func (h *handler) matches(signal SignalID, detail Quark) bool {
	return h.signal == signal && (h.detail == 0 || h.detail == detail)
}

// invalidate marks the handler removed and notifies the closure once.
func (h *handler) invalidate() {
	if !h.removed.CompareAndSwap(false, true) {
		return
	}
	reg().handlers.Add(-1)
	if h.closure.Invalidate != nil {
		h.closure.Invalidate()
	}
}

// handlerList is kept apart from Object so it can be finalized after the
// object is collected.
type handlerList struct {
	mu       sync.Mutex
	handlers []*handler
	closed   bool
}

func (l *handlerList) add(h *handler) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return false
	}
	l.handlers = append(l.handlers, h)
	return true
}

func (l *handlerList) remove(id HandlerID) *handler {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, h := range l.handlers {
		if h.id == id {
			// Keep connection order; emission depends on it
			l.handlers = append(l.handlers[:i], l.handlers[i+1:]...)
			return h
		}
	}
	return nil
}

// matching appends the handlers for an emission to before and after,
// preserving connection order.
func (l *handlerList) matching(signal SignalID, detail Quark, before, after []*handler) ([]*handler, []*handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, h := range l.handlers {
		if !h.matches(signal, detail) {
			continue
		}
		if h.after {
			after = append(after, h)
		} else {
			before = append(before, h)
		}
	}
	return before, after
}

func (l *handlerList) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.handlers)
}

func (l *handlerList) contains(id HandlerID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, h := range l.handlers {
		if h.id == id {
			return true
		}
	}
	return false
}

// finalize closes the list and invalidates every handler.
func (l *handlerList) finalize() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	handlers := l.handlers
	l.handlers = nil
	l.mu.Unlock()

	reg().objects.Add(-1)
	for _, h := range handlers {
		h.invalidate()
	}
}

// Connect registers closure for the signal id on this instance.
// A non-zero detail restricts delivery to emissions carrying that detail.
// Handlers connected with after run once the RunLast class handler ran.
func (o *Object) Connect(id SignalID, detail Quark, closure Closure, after bool) (HandlerID, error) {
	if closure.Invoke == nil {
		return 0, ErrNilClosure
	}
	if o.Disposed() {
		return 0, fmt.Errorf("connect to %s: %w", o, ErrDisposed)
	}
	sig := reg().signal(id)
	if sig == nil || !o.typ.IsA(sig.owner) {
		Logger().Debug("connect rejected", "object", o.String(), "signal", id, "reason", "unknown signal")
		return 0, fmt.Errorf("connect signal %d to %s: %w", id, o, ErrUnknownSignal)
	}
	if detail != 0 && !sig.flags.Has(SignalDetailed) {
		Logger().Debug("connect rejected", "object", o.String(), "signal", sig.name, "reason", "detail not allowed")
		return 0, fmt.Errorf("connect %s::%s to %s: %w", sig.name, detail, o, ErrDetailNotAllowed)
	}

	h := &handler{
		id:      HandlerID(nextHandlerID.Add(1)),
		signal:  id,
		detail:  detail,
		after:   after,
		closure: closure,
	}
	if !o.list.add(h) {
		return 0, fmt.Errorf("connect to %s: %w", o, ErrDisposed)
	}
	reg().handlers.Add(1)
	return h.id, nil
}

// Disconnect removes the handler and invalidates its closure.
// Disconnecting an id that is not connected returns ErrHandlerNotFound.
func (o *Object) Disconnect(id HandlerID) error {
	h := o.list.remove(id)
	if h == nil {
		Logger().Warn("disconnect of unknown handler", "object", o.String(), "handler", uint64(id))
		return fmt.Errorf("disconnect %d from %s: %w", id, o, ErrHandlerNotFound)
	}
	h.invalidate()
	return nil
}
