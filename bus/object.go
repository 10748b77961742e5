package bus

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"weak"

	"github.com/google/uuid"
)

// Object is an instance that can emit signals.
// Typed wrappers embed *Object and pass themselves as self.
type Object struct {
	typ      Type
	id       uuid.UUID
	self     any
	list     *handlerList
	disposed atomic.Bool
}

// NewObject creates an instance of t. self is the value Self returns,
// usually the wrapper embedding the object; nil means the object itself.
// Panics if t is not an object type.
func NewObject(t Type, self any) *Object {
	if !t.IsObject() {
		panic(fmt.Sprintf("bus: %s is not an object type", t))
	}
	o := &Object{
		typ:  t,
		id:   uuid.New(),
		self: self,
		list: &handlerList{},
	}
	reg().objects.Add(1)

	// Handlers of an object that is collected without Dispose are still
	// invalidated so their owners observe the end of the registration.
	runtime.AddCleanup(o, func(l *handlerList) { l.finalize() }, o.list)
	return o
}

// Base returns the object itself; wrappers get it through embedding.
func (o *Object) Base() *Object { return o }

// Type returns the runtime type of the instance.
func (o *Object) Type() Type { return o.typ }

// ID returns a unique identity used in logs.
func (o *Object) ID() uuid.UUID { return o.id }

// Self returns the wrapper registered at construction, or o.
func (o *Object) Self() any {
	if o.self != nil {
		return o.self
	}
	return o
}

// String formats the instance as "Type(id)".
func (o *Object) String() string {
	return fmt.Sprintf("%s(%s)", o.typ.Name(), o.id)
}

// Dispose disconnects every handler and marks the object unusable.
// Safe to call multiple times; subsequent calls are no-ops.
func (o *Object) Dispose() {
	if !o.disposed.CompareAndSwap(false, true) {
		return
	}
	o.list.finalize()
}

// Disposed reports whether Dispose was called.
func (o *Object) Disposed() bool { return o.disposed.Load() }

// HandlerCount returns the number of connected handlers.
func (o *Object) HandlerCount() int { return o.list.count() }

// IsConnected reports whether id is connected to this instance.
func (o *Object) IsConnected(id HandlerID) bool { return o.list.contains(id) }

// Downgrade returns a weak reference that does not keep o alive.
func (o *Object) Downgrade() WeakRef {
	return WeakRef{ptr: weak.Make(o)}
}

// WeakRef is a non-owning reference to an Object.
type WeakRef struct {
	ptr weak.Pointer[Object]
}

// Upgrade returns the object, or nil if it was collected or disposed.
func (w WeakRef) Upgrade() *Object {
	o := w.ptr.Value()
	if o == nil || o.Disposed() {
		return nil
	}
	return o
}
