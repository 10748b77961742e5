package signalman

import (
	"context"
	"iter"
)

// Attached pairs the arguments of an emission with the stream's target as
// it is when the emission is read. Alive is false once the target is gone.
type Attached[O Instance, A any] struct {
	Target O
	Alive  bool
	Args   A
}

// SelfStream is a Stream that yields its target with every emission.
type SelfStream[O Instance, A any] struct {
	inner *Stream[O, A]
}

// AttachTarget wraps s so each item carries the upgraded target.
func (s *Stream[O, A]) AttachTarget() *SelfStream[O, A] {
	return &SelfStream[O, A]{inner: s}
}

func (s *SelfStream[O, A]) attach(args A) Attached[O, A] {
	target, alive := s.inner.target.Upgrade()
	return Attached[O, A]{Target: target, Alive: alive, Args: args}
}

// Next returns the next emission with its target.
func (s *SelfStream[O, A]) Next(ctx context.Context) (Attached[O, A], error) {
	args, err := s.inner.Next(ctx)
	if err != nil {
		return Attached[O, A]{}, err
	}
	return s.attach(args), nil
}

// TryNext returns the next emission with its target if one is queued.
func (s *SelfStream[O, A]) TryNext() (Attached[O, A], bool) {
	args, ok := s.inner.TryNext()
	if !ok {
		return Attached[O, A]{}, false
	}
	return s.attach(args), true
}

// Seq iterates until the stream ends or ctx is done.
func (s *SelfStream[O, A]) Seq(ctx context.Context) iter.Seq[Attached[O, A]] {
	return func(yield func(Attached[O, A]) bool) {
		for args := range s.inner.Seq(ctx) {
			if !yield(s.attach(args)) {
				return
			}
		}
	}
}

// Len returns the number of queued emissions.
func (s *SelfStream[O, A]) Len() int { return s.inner.Len() }

// Terminated reports whether the stream ended and was drained.
func (s *SelfStream[O, A]) Terminated() bool { return s.inner.Terminated() }

// Close disconnects the stream.
func (s *SelfStream[O, A]) Close() error { return s.inner.Close() }

// Unwrap returns the plain stream.
func (s *SelfStream[O, A]) Unwrap() *Stream[O, A] { return s.inner }
