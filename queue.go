package signalman

import (
	"context"
	"sync"
)

// minCompact is the consumed prefix length below which pop never compacts.
const minCompact = 32

// queue is an unbounded FIFO with many producers and one consumer.
// Items pushed before close remain readable after it.
type queue[T any] struct {
	mu     sync.Mutex
	items  []T
	head   int
	closed bool
	ready  chan struct{} // holds at most one wakeup
	done   chan struct{} // closed by close
}

func newQueue[T any]() *queue[T] {
	return &queue[T]{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// push appends v. Returns false once the queue is closed.
func (q *queue[T]) push(v T) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, v)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
	return true
}

// close stops further pushes.
// Safe to call multiple times; subsequent calls are no-ops.
func (q *queue[T]) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.done)
}

// pop removes the oldest item without blocking.
func (q *queue[T]) pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	if q.head == len(q.items) {
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	switch {
	case q.head == len(q.items):
		// Reuse the backing array once drained
		q.items = q.items[:0]
		q.head = 0
	case q.head >= minCompact && q.head*2 >= len(q.items):
		// A reader lagging behind never drains; drop the consumed prefix
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	return v, true
}

// wait blocks until an item is available, the queue is closed and drained,
// or ctx is done.
func (q *queue[T]) wait(ctx context.Context) (T, error) {
	for {
		if v, ok := q.pop(); ok {
			return v, nil
		}
		if q.terminated() {
			var zero T
			return zero, ErrEndOfStream
		}
		select {
		case <-q.ready:
		case <-q.done:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

func (q *queue[T]) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// terminated reports whether the queue is closed and empty.
func (q *queue[T]) terminated() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed && q.head == len(q.items)
}
