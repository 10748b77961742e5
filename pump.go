package signalman

import "context"

const (
	// defaultBufferSize is the channel buffer size used by Chan.
	defaultBufferSize = 16
)

// Chan forwards the stream into a channel from a worker goroutine.
// The channel is closed when the stream ends or ctx is done; an emission
// read from the stream while ctx ends is dropped. The worker keeps the
// stream reachable until it exits.
func (s *Stream[O, A]) Chan(ctx context.Context) <-chan A {
	out := make(chan A, defaultBufferSize)
	go s.pump(ctx, out)
	return out
}

// pump is the worker goroutine behind Chan.
func (s *Stream[O, A]) pump(ctx context.Context, out chan<- A) {
	defer close(out)

	for {
		args, err := s.Next(ctx)
		if err != nil {
			return
		}
		select {
		case out <- args:
		case <-ctx.Done():
			return
		}
	}
}
