package signalman_test

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/zoobzio/signalman"
	"github.com/zoobzio/signalman/bus"
	"github.com/zoobzio/signalman/internal/testobject"
)

func TestStreamDeliversInOrder(t *testing.T) {
	obj := testobject.New()
	defer obj.Dispose()

	stream, err := testobject.Something.Stream(obj)
	require.NoError(t, err)
	defer stream.Close()

	words := []string{"one", "two", "three"}
	for _, w := range words {
		n, err := obj.Something(w, false)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), n, "the default rule returns zero")
	}
	assert.Equal(t, 3, stream.Len())

	ctx := t.Context()
	for _, want := range words {
		args, err := stream.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, args.V0)
	}
	_, ok := stream.TryNext()
	assert.False(t, ok)
}

func TestStreamWithRule(t *testing.T) {
	obj := testobject.New()
	defer obj.Dispose()

	stream, err := testobject.Something.StreamWith(obj, func(_ *testobject.TestObject, args signalman.Args1[string]) uint64 {
		return uint64(len(args.V0))
	})
	require.NoError(t, err)
	defer stream.Close()

	n, err := obj.Something("hello", false)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), n)

	args, ok := stream.TryNext()
	require.True(t, ok)
	assert.Equal(t, "hello", args.V0)
}

func TestDetailedStream(t *testing.T) {
	obj := testobject.New()
	defer obj.Dispose()

	stream, err := testobject.SomethingElse.Stream(obj)
	require.NoError(t, err)
	defer stream.Close()

	_, err = obj.Something("plain", false)
	require.NoError(t, err)
	_, err = obj.Something("else", true)
	require.NoError(t, err)

	args, err := stream.Next(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "else", args.V0)
	assert.Equal(t, 0, stream.Len())
}

func TestStreamDisconnectIsIdempotent(t *testing.T) {
	obj := testobject.New()
	defer obj.Dispose()

	stream, err := testobject.Nothing.Stream(obj)
	require.NoError(t, err)
	require.NoError(t, obj.Nothing("queued"))
	assert.True(t, stream.Connected())
	assert.Equal(t, 1, obj.HandlerCount())

	stream.Disconnect()
	stream.Disconnect()
	require.NoError(t, stream.Close())
	assert.False(t, stream.Connected())
	assert.Equal(t, 0, obj.HandlerCount())

	// Emissions after disconnect are not delivered; queued ones still are
	require.NoError(t, obj.Nothing("dropped"))
	args, err := stream.Next(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "queued", args.V0)

	_, err = stream.Next(t.Context())
	assert.ErrorIs(t, err, signalman.ErrEndOfStream)
	assert.True(t, stream.Terminated())
}

func TestDisposeEndsStream(t *testing.T) {
	obj := testobject.New()
	stream, err := testobject.Nothing.Stream(obj)
	require.NoError(t, err)

	require.NoError(t, obj.Nothing("last"))
	obj.Dispose()

	assert.False(t, stream.Connected())
	assert.False(t, stream.Target().Alive(), "a disposed target does not upgrade")

	got := make([]string, 0, 1)
	for args := range stream.Seq(t.Context()) {
		got = append(got, args.V0)
	}
	assert.Equal(t, []string{"last"}, got)
	assert.True(t, stream.Terminated())

	// Disconnecting after the target is gone is a no-op
	stream.Disconnect()
}

func TestStreamNextHonorsContext(t *testing.T) {
	obj := testobject.New()
	defer obj.Dispose()

	stream, err := testobject.Ping.Stream(obj)
	require.NoError(t, err)
	defer stream.Close()

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()
	_, err = stream.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, stream.Connected())
}

func TestStreamWakesBlockedReader(t *testing.T) {
	obj := testobject.New()
	defer obj.Dispose()

	stream, err := testobject.Nothing.Stream(obj)
	require.NoError(t, err)
	defer stream.Close()

	done := make(chan string, 1)
	go func() {
		args, err := stream.Next(context.Background())
		if err != nil {
			done <- err.Error()
			return
		}
		done <- args.V0
	}()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, obj.Nothing("wake"))

	select {
	case got := <-done:
		assert.Equal(t, "wake", got)
	case <-time.After(time.Second):
		t.Fatal("reader was not woken")
	}
}

func TestOnceFuture(t *testing.T) {
	obj := testobject.New()
	defer obj.Dispose()

	stream, err := testobject.Nothing.Stream(obj)
	require.NoError(t, err)
	once := stream.Once()

	_, ready := once.Poll()
	assert.False(t, ready)
	assert.False(t, once.Done())

	require.NoError(t, obj.Nothing("first"))
	require.NoError(t, obj.Nothing("second"))

	args, target, err := once.Wait(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "first", args.V0)
	got, ok := target.Upgrade()
	require.True(t, ok)
	assert.Same(t, obj, got)
	assert.Equal(t, 0, obj.HandlerCount(), "completion disconnects the stream")

	// Fused: the same result on every later call
	res, ready := once.Poll()
	require.True(t, ready)
	assert.Equal(t, "first", res.Args.V0)
	assert.NoError(t, res.Err)
	args, _, err = once.Wait(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "first", args.V0)
}

func TestOnceFutureEndOfStream(t *testing.T) {
	obj := testobject.New()
	defer obj.Dispose()

	stream, err := testobject.Nothing.Stream(obj)
	require.NoError(t, err)
	stream.Disconnect()

	once := stream.Once()
	assert.True(t, once.Done())

	_, _, err = once.Wait(t.Context())
	assert.ErrorIs(t, err, signalman.ErrEndOfStream)

	res, ready := once.Poll()
	require.True(t, ready)
	assert.ErrorIs(t, res.Err, signalman.ErrEndOfStream)

	_, _, err = once.Wait(t.Context())
	assert.ErrorIs(t, err, signalman.ErrEndOfStream, "fused")
}

func TestOnceFutureContext(t *testing.T) {
	obj := testobject.New()
	defer obj.Dispose()

	stream, err := testobject.Nothing.Stream(obj)
	require.NoError(t, err)
	once := stream.Once()
	defer once.Close()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, _, err = once.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, once.Done(), "a cancelled wait leaves the future pending")

	require.NoError(t, obj.Nothing("later"))
	args, _, err := once.Wait(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "later", args.V0)
	assert.Same(t, stream, once.IntoStream())
}

func TestOnceFutureDoneWhileWaiting(t *testing.T) {
	obj := testobject.New()
	defer obj.Dispose()

	stream, err := testobject.Nothing.Stream(obj)
	require.NoError(t, err)
	once := stream.Once()

	waited := make(chan string, 1)
	go func() {
		args, _, err := once.Wait(t.Context())
		if err != nil {
			waited <- err.Error()
			return
		}
		waited <- args.V0
	}()
	time.Sleep(10 * time.Millisecond)

	// Done must answer while Wait blocks
	checked := make(chan bool, 1)
	go func() { checked <- once.Done() }()
	select {
	case done := <-checked:
		assert.False(t, done)
	case <-time.After(time.Second):
		t.Fatal("Done blocked behind Wait")
	}

	require.NoError(t, obj.Nothing("released"))
	select {
	case got := <-waited:
		assert.Equal(t, "released", got)
	case <-time.After(time.Second):
		t.Fatal("Wait did not return")
	}
	assert.True(t, once.Done())
}

func TestAttachTarget(t *testing.T) {
	obj := testobject.New()

	stream, err := testobject.Nothing.Stream(obj)
	require.NoError(t, err)
	self := stream.AttachTarget()
	defer self.Close()

	require.NoError(t, obj.Nothing("alive"))
	item, err := self.Next(t.Context())
	require.NoError(t, err)
	assert.True(t, item.Alive)
	assert.Same(t, obj, item.Target)
	assert.Equal(t, "alive", item.Args.V0)

	require.NoError(t, obj.Nothing("orphan"))
	obj.Dispose()

	item, ok := self.TryNext()
	require.True(t, ok)
	assert.False(t, item.Alive)
	assert.Nil(t, item.Target)
	assert.Equal(t, "orphan", item.Args.V0)
	assert.True(t, self.Terminated())
}

func TestIntoTarget(t *testing.T) {
	obj := testobject.New()
	defer obj.Dispose()

	stream, err := testobject.Ping.Stream(obj)
	require.NoError(t, err)

	w := stream.IntoTarget()
	assert.False(t, stream.Connected())
	got, ok := w.Upgrade()
	require.True(t, ok)
	assert.Same(t, obj, got)
}

func TestStreamChan(t *testing.T) {
	obj := testobject.New()

	stream, err := testobject.Nothing.Stream(obj)
	require.NoError(t, err)
	ch := stream.Chan(t.Context())

	for i := range 3 {
		require.NoError(t, obj.Nothing(fmt.Sprint(i)))
	}
	obj.Dispose()

	var got []string
	for args := range ch {
		got = append(got, args.V0)
	}
	assert.Equal(t, []string{"0", "1", "2"}, got)
}

func TestStreamConcurrentProducers(t *testing.T) {
	const producers, perProducer = 8, 200

	obj := testobject.New()
	defer obj.Dispose()

	stream, err := testobject.Changed.Stream(obj)
	require.NoError(t, err)
	defer stream.Close()

	var g errgroup.Group
	for p := range producers {
		name := fmt.Sprintf("p%d", p)
		g.Go(func() error {
			for i := range perProducer {
				if err := obj.Change(name, int64(i)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// Each producer's emissions arrive in the order they were made
	last := make(map[string]int64)
	for range producers * perProducer {
		args, ok := stream.TryNext()
		require.True(t, ok)
		prev, seen := last[args.V0]
		if seen {
			require.Greater(t, args.V1, prev, "producer %s out of order", args.V0)
		}
		last[args.V0] = args.V1
	}
	assert.Len(t, last, producers)
	assert.Equal(t, 0, stream.Len())
}

func TestCollectedStreamDisconnects(t *testing.T) {
	obj := testobject.New()
	defer obj.Dispose()

	func() {
		_, err := testobject.Ping.Stream(obj)
		require.NoError(t, err)
	}()
	require.Equal(t, 1, obj.HandlerCount())

	deadline := time.Now().Add(2 * time.Second)
	for obj.HandlerCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("collected stream was not disconnected")
		}
		runtime.GC()
		time.Sleep(5 * time.Millisecond)
	}
}

func TestStreamOnDisposedTarget(t *testing.T) {
	obj := testobject.New()
	obj.Dispose()

	_, err := testobject.Ping.Stream(obj)
	require.Error(t, err)
	assert.True(t, errors.Is(err, bus.ErrDisposed))
}
