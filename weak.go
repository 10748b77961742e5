package signalman

import "github.com/zoobzio/signalman/bus"

// WeakRef is a typed reference that does not keep its instance alive.
// The zero WeakRef never upgrades.
type WeakRef[O Instance] struct {
	ref bus.WeakRef
}

// Downgrade returns a weak reference to o.
func Downgrade[O Instance](o O) WeakRef[O] {
	return WeakRef[O]{ref: o.Base().Downgrade()}
}

// Upgrade returns the instance unless it was collected or disposed.
func (w WeakRef[O]) Upgrade() (O, bool) {
	var zero O
	obj := w.ref.Upgrade()
	if obj == nil {
		return zero, false
	}
	o, ok := obj.Self().(O)
	return o, ok
}

// Alive reports whether Upgrade would succeed.
func (w WeakRef[O]) Alive() bool {
	_, ok := w.Upgrade()
	return ok
}
