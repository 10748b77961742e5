package signalman

import (
	"io"
	"sync"

	"go.uber.org/multierr"

	"github.com/zoobzio/signalman/bus"
)

// Group releases a set of handlers and streams together, for owners that
// connect to several signals and tear them down at once.
// The zero Group is ready to use.
type Group struct {
	mu       sync.Mutex
	releases []func() error
	closed   bool
}

// Handler adds a handler connected on target. If the group is already
// closed the handler is disconnected immediately.
func (g *Group) Handler(target Instance, id bus.HandlerID) {
	obj := target.Base()
	g.add(func() error { return obj.Disconnect(id) })
}

// Closer adds a stream, observer wrapper or any other io.Closer.
func (g *Group) Closer(c io.Closer) {
	g.add(c.Close)
}

func (g *Group) add(release func() error) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		_ = release() //nolint:errcheck // Nothing to report to after Close
		return
	}
	g.releases = append(g.releases, release)
	g.mu.Unlock()
}

// Len returns the number of members not yet released.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.releases)
}

// Close releases every member, most recent first, and returns the combined
// errors. Handlers already removed by their instance report
// bus.ErrHandlerNotFound.
// Safe to call multiple times; subsequent calls are no-ops.
func (g *Group) Close() error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return nil
	}
	g.closed = true
	releases := g.releases
	g.releases = nil
	g.mu.Unlock()

	var err error
	for i := len(releases) - 1; i >= 0; i-- {
		err = multierr.Append(err, releases[i]())
	}
	return err
}

// Observer adds a bus observer.
func (g *Group) Observer(o *bus.Observer) {
	g.add(func() error {
		o.Close()
		return nil
	})
}
