package signalman

import (
	"context"
	"errors"
	"sync"
)

// OnceResult is the outcome of a OnceFuture.
type OnceResult[O Instance, A any] struct {
	Args   A
	Target WeakRef[O]
	Err    error
}

// OnceFuture waits for the first emission of a stream and then disconnects
// it. Once complete, every call returns the same result.
//
// Like Stream, a future has a single consumer: Wait and Poll must not race
// each other. Done and Close may be called from any goroutine, including
// while Wait blocks.
type OnceFuture[O Instance, A any] struct {
	mu     sync.Mutex
	stream *Stream[O, A]
	done   bool
	result OnceResult[O, A]
}

// Once turns s into a future of its next emission.
func (s *Stream[O, A]) Once() *OnceFuture[O, A] {
	return &OnceFuture[O, A]{stream: s}
}

func (f *OnceFuture[O, A]) complete(args A, err error) OnceResult[O, A] {
	f.done = true
	f.result = OnceResult[O, A]{Args: args, Target: f.stream.IntoTarget(), Err: err}
	return f.result
}

// Poll returns the result without blocking. The boolean is false while no
// emission arrived and the stream is still connected.
func (f *OnceFuture[O, A]) Poll() (OnceResult[O, A], bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done {
		return f.result, true
	}
	if args, ok := f.stream.TryNext(); ok {
		return f.complete(args, nil), true
	}
	if f.stream.Terminated() {
		var zero A
		return f.complete(zero, ErrEndOfStream), true
	}
	return OnceResult[O, A]{}, false
}

// Wait blocks until the first emission or the end of the stream, in which
// case it returns ErrEndOfStream. A done ctx returns ctx.Err() and leaves
// the future pending.
func (f *OnceFuture[O, A]) Wait(ctx context.Context) (A, WeakRef[O], error) {
	f.mu.Lock()
	if f.done {
		defer f.mu.Unlock()
		return f.result.Args, f.result.Target, f.result.Err
	}
	f.mu.Unlock()

	// The lock is not held while blocked so Done stays responsive
	args, err := f.stream.Next(ctx)
	if err != nil && !errors.Is(err, ErrEndOfStream) {
		return args, f.stream.Target(), err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.done {
		f.complete(args, err)
	}
	return f.result.Args, f.result.Target, f.result.Err
}

// Done reports whether the future completed, or would complete
// immediately because the stream ended.
func (f *OnceFuture[O, A]) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done || f.stream.Terminated()
}

// Close disconnects the underlying stream.
func (f *OnceFuture[O, A]) Close() error {
	return f.stream.Close()
}

// IntoStream returns the underlying stream. Check Done first: a completed
// future has already disconnected it.
func (f *OnceFuture[O, A]) IntoStream() *Stream[O, A] {
	return f.stream
}
