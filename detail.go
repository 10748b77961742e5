package signalman

import (
	"fmt"

	"github.com/zoobzio/signalman/bus"
)

// Descriptor is anything that names a signal and, optionally, a detail:
// a *Signal, a Detailed view or a Details routing.
type Descriptor[O Instance, A, R any] interface {
	Signal() *Signal[O, A, R]
	Detail() bus.Quark
	Details() Details[O, A, R]
}

// Detailed is a signal fixed to one detail, declared with Signal.Detailed.
type Detailed[O Instance, A, R any] struct {
	signal *Signal[O, A, R]
	detail bus.Quark
}

// Signal returns the underlying signal.
func (d Detailed[O, A, R]) Signal() *Signal[O, A, R] { return d.signal }

// Detail returns the fixed detail.
func (d Detailed[O, A, R]) Detail() bus.Quark { return d.detail }

// Details returns the routing of the detailed signal.
func (d Detailed[O, A, R]) Details() Details[O, A, R] {
	return Details[O, A, R]{signal: d.signal, detail: d.detail}
}

func (d Detailed[O, A, R]) String() string {
	return fmt.Sprintf("%s::%s", d.signal.name, d.detail)
}

// Route is the normalized form the bus connects with.
type Route struct {
	Signal bus.SignalID
	Detail bus.Quark
	After  bool
}

func (r Route) String() string {
	name := fmt.Sprintf("signal(%d)", r.Signal)
	if q, ok := bus.QuerySignal(r.Signal); ok {
		name = q.Name
	}
	if r.Detail != 0 {
		name += "::" + r.Detail.String()
	}
	if r.After {
		name += " (after)"
	}
	return name
}

// Details carries the typed routing of a connection: the signal, an
// optional detail and whether handlers run after the class handler.
type Details[O Instance, A, R any] struct {
	signal *Signal[O, A, R]
	detail bus.Quark
	after  bool
}

// Signal returns the signal being routed.
func (d Details[O, A, R]) Signal() *Signal[O, A, R] { return d.signal }

// Detail returns the detail, 0 when none is set.
func (d Details[O, A, R]) Detail() bus.Quark { return d.detail }

// Details returns d.
func (d Details[O, A, R]) Details() Details[O, A, R] { return d }

// IsAfter reports whether handlers run after the class handler.
func (d Details[O, A, R]) IsAfter() bool { return d.after }

// After returns d with handlers running after the class handler.
func (d Details[O, A, R]) After() Details[O, A, R] {
	d.after = true
	return d
}

// WithDetail returns d restricted to detail.
// Panics if d already has a detail or the signal is not detailed.
func (d Details[O, A, R]) WithDetail(detail bus.Quark) Details[O, A, R] {
	if d.detail != 0 {
		panic(fmt.Sprintf("signalman: %s already has detail %s", d.signal.name, d.detail))
	}
	if !d.signal.flags.Has(bus.SignalDetailed) {
		panic(fmt.Sprintf("signalman: signal %q does not accept details", d.signal.name))
	}
	d.detail = detail
	return d
}

// Normalize resolves the routing into the form the bus expects.
func (d Details[O, A, R]) Normalize() Route {
	return Route{Signal: d.signal.ID(), Detail: d.detail, After: d.after}
}

func (d Details[O, A, R]) String() string {
	s := d.signal.name
	if d.detail != 0 {
		s += "::" + d.detail.String()
	}
	if d.after {
		s += " (after)"
	}
	return s
}

// ParseRoute resolves "name" or "name::detail" on owner. Unknown signals,
// details on undetailed signals and details never seen before all fail.
func ParseRoute(spec string, owner bus.Type, after bool) (Route, bool) {
	id, detail, ok := bus.ParseName(spec, owner, false)
	if !ok {
		return Route{}, false
	}
	return Route{Signal: id, Detail: detail, After: after}, true
}
