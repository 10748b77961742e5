package signalman

import (
	"context"
	"iter"
	"runtime"
	"sync"

	"github.com/zoobzio/signalman/bus"
)

// Stream delivers the arguments of every emission of one signal on one
// instance, in emission order. It holds its target weakly: the stream
// ends when the target is disposed or collected, or when the stream is
// disconnected. A stream that is garbage-collected without Close is
// disconnected by the runtime.
//
// A Stream has a single consumer; Next, TryNext, Seq and Chan must not be
// used concurrently.
type Stream[O Instance, A any] struct {
	queue  *queue[A]
	target WeakRef[O]
	conn   *streamConn
}

// streamConn is the disconnect state of a stream, kept apart from the
// stream so a runtime cleanup can reach it.
type streamConn struct {
	mu     sync.Mutex
	target bus.WeakRef
	handle bus.HandlerID
	live   bool
	close  func()
}

// disconnect removes the handler and closes the queue.
// Safe to call multiple times; subsequent calls are no-ops.
func (c *streamConn) disconnect() {
	c.mu.Lock()
	if !c.live {
		c.mu.Unlock()
		return
	}
	c.live = false
	c.mu.Unlock()

	if obj := c.target.Upgrade(); obj != nil {
		_ = obj.Disconnect(c.handle) //nolint:errcheck // The bus may have dropped it already
	}
	c.close()
}

// invalidated runs when the bus drops the handler.
func (c *streamConn) invalidated() {
	c.mu.Lock()
	c.live = false
	c.mu.Unlock()
	c.close()
}

func (c *streamConn) connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.live
}

// Stream connects a stream to target. Handlers see the zero R as the
// stream's return.
func (d Details[O, A, R]) Stream(target O) (*Stream[O, A], error) {
	return d.StreamWith(target, func(O, A) R {
		var zero R
		return zero
	})
}

// StreamWith connects a stream to target. rule runs synchronously on each
// emission and its result is what the stream returns to the accumulator.
func (d Details[O, A, R]) StreamWith(target O, rule func(this O, args A) R) (*Stream[O, A], error) {
	q := newQueue[A]()
	conn := &streamConn{
		target: target.Base().Downgrade(),
		close:  q.close,
	}
	route := d.Normalize()
	sig := d.signal

	invoke := sig.closure(func(this O, args A) R {
		res := rule(this, args)
		if !q.push(args) {
			bus.Logger().Warn("signal delivered to closed stream", "signal", route.String())
		}
		return res
	})

	// Invalidate may run as soon as the handler is added
	conn.mu.Lock()
	conn.live = true
	id, err := ConnectClosure(target, route, bus.Closure{
		Invoke:     invoke,
		Invalidate: conn.invalidated,
	})
	if err != nil {
		conn.live = false
		conn.mu.Unlock()
		q.close()
		return nil, err
	}
	conn.handle = id
	conn.mu.Unlock()

	s := &Stream[O, A]{
		queue:  q,
		target: Downgrade(target),
		conn:   conn,
	}
	runtime.AddCleanup(s, func(c *streamConn) { c.disconnect() }, conn)
	return s, nil
}

// Stream connects a stream to every emission of s on target.
func (s *Signal[O, A, R]) Stream(target O) (*Stream[O, A], error) {
	return s.Details().Stream(target)
}

// StreamWith is Details.StreamWith for the bare signal.
func (s *Signal[O, A, R]) StreamWith(target O, rule func(this O, args A) R) (*Stream[O, A], error) {
	return s.Details().StreamWith(target, rule)
}

// Stream connects a stream to emissions carrying d's detail.
func (d Detailed[O, A, R]) Stream(target O) (*Stream[O, A], error) {
	return d.Details().Stream(target)
}

// StreamWith is Details.StreamWith for the detailed signal.
func (d Detailed[O, A, R]) StreamWith(target O, rule func(this O, args A) R) (*Stream[O, A], error) {
	return d.Details().StreamWith(target, rule)
}

// Next returns the next arguments, blocking until an emission, the end of
// the stream (ErrEndOfStream) or ctx is done.
func (s *Stream[O, A]) Next(ctx context.Context) (A, error) {
	return s.queue.wait(ctx)
}

// TryNext returns the next arguments if one is queued.
func (s *Stream[O, A]) TryNext() (A, bool) {
	return s.queue.pop()
}

// Seq iterates until the stream ends or ctx is done.
func (s *Stream[O, A]) Seq(ctx context.Context) iter.Seq[A] {
	return func(yield func(A) bool) {
		for {
			args, err := s.Next(ctx)
			if err != nil {
				return
			}
			if !yield(args) {
				return
			}
		}
	}
}

// Len returns the number of queued emissions.
func (s *Stream[O, A]) Len() int { return s.queue.len() }

// Terminated reports whether the stream ended and every queued emission
// was consumed.
func (s *Stream[O, A]) Terminated() bool { return s.queue.terminated() }

// Connected reports whether the handler is still registered.
func (s *Stream[O, A]) Connected() bool { return s.conn.connected() }

// Disconnect removes the handler. Queued emissions remain readable.
// Safe to call multiple times; subsequent calls are no-ops.
func (s *Stream[O, A]) Disconnect() { s.conn.disconnect() }

// Close disconnects the stream. It always returns nil.
func (s *Stream[O, A]) Close() error {
	s.Disconnect()
	return nil
}

// Target returns the weak reference to the target.
func (s *Stream[O, A]) Target() WeakRef[O] { return s.target }

// IntoTarget disconnects the stream and returns its target.
func (s *Stream[O, A]) IntoTarget() WeakRef[O] {
	s.Disconnect()
	return s.target
}
