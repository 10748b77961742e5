package bus

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObjectRequiresObjectType(t *testing.T) {
	assert.Panics(t, func() { NewObject(TypeString, nil) })
}

func TestObjectIdentity(t *testing.T) {
	owner := newTestType(t)
	a := NewObject(owner, nil)
	defer a.Dispose()
	b := NewObject(owner, nil)
	defer b.Dispose()

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, owner, a.Type())
	assert.Same(t, a, a.Self())
	assert.Contains(t, a.String(), owner.Name()+"(")
}

func TestDisposeInvalidatesHandlers(t *testing.T) {
	owner := newTestType(t, SignalSpec{Name: "gone"})
	id := mustLookup(t, "gone", owner)
	obj := NewObject(owner, nil)

	var invalidated int
	h, err := obj.Connect(id, 0, Closure{
		Invoke:     func([]Value) (Value, error) { return Value{}, nil },
		Invalidate: func() { invalidated++ },
	}, false)
	require.NoError(t, err)
	assert.True(t, obj.IsConnected(h))
	assert.Equal(t, 1, obj.HandlerCount())

	obj.Dispose()
	obj.Dispose()
	assert.Equal(t, 1, invalidated)
	assert.True(t, obj.Disposed())
	assert.Equal(t, 0, obj.HandlerCount())

	_, err = obj.Connect(id, 0, Closure{Invoke: func([]Value) (Value, error) { return Value{}, nil }}, false)
	assert.ErrorIs(t, err, ErrDisposed)
	_, _, err = obj.Emit(id, 0)
	assert.ErrorIs(t, err, ErrDisposed)
}

func TestDisconnect(t *testing.T) {
	buf := captureLogs(t)
	owner := newTestType(t, SignalSpec{Name: "once"})
	id := mustLookup(t, "once", owner)
	obj := NewObject(owner, nil)
	defer obj.Dispose()

	var invalidated int
	h, err := obj.Connect(id, 0, Closure{
		Invoke:     func([]Value) (Value, error) { return Value{}, nil },
		Invalidate: func() { invalidated++ },
	}, false)
	require.NoError(t, err)

	require.NoError(t, obj.Disconnect(h))
	assert.Equal(t, 1, invalidated)
	assert.False(t, obj.IsConnected(h))

	assert.ErrorIs(t, obj.Disconnect(h), ErrHandlerNotFound)
	assert.Equal(t, 1, invalidated)
	assert.Contains(t, buf.String(), "disconnect of unknown handler")
}

func TestConnectRejections(t *testing.T) {
	buf := captureLogs(t)
	owner := newTestType(t)
	obj := NewObject(owner, nil)
	defer obj.Dispose()

	_, err := obj.Connect(1, 0, Closure{}, false)
	assert.ErrorIs(t, err, ErrNilClosure)

	_, err = obj.Connect(SignalID(1<<30), 0, Closure{Invoke: func([]Value) (Value, error) { return Value{}, nil }}, false)
	assert.ErrorIs(t, err, ErrUnknownSignal)
	assert.Contains(t, buf.String(), "connect rejected")
}

func TestWeakRef(t *testing.T) {
	owner := newTestType(t)
	obj := NewObject(owner, nil)
	w := obj.Downgrade()

	assert.Same(t, obj, w.Upgrade())
	obj.Dispose()
	assert.Nil(t, w.Upgrade(), "a disposed object does not upgrade")

	assert.Nil(t, WeakRef{}.Upgrade())
}

func TestWeakRefCollected(t *testing.T) {
	owner := newTestType(t)
	w := func() WeakRef {
		return NewObject(owner, nil).Downgrade()
	}()

	for range 10 {
		runtime.GC()
		if w.Upgrade() == nil {
			return
		}
	}
	t.Fatal("object still reachable after collection")
}

func TestReadStats(t *testing.T) {
	before := ReadStats()
	owner := newTestType(t, SignalSpec{Name: "counted"})
	id := mustLookup(t, "counted", owner)
	obj := NewObject(owner, nil)

	var calls int
	_, err := obj.Connect(id, 0, returning(Value{}, &calls), false)
	require.NoError(t, err)
	_, _, err = obj.Emit(id, 0)
	require.NoError(t, err)

	after := ReadStats()
	assert.GreaterOrEqual(t, after.Types, before.Types+1)
	assert.GreaterOrEqual(t, after.Signals, before.Signals+1)
	assert.GreaterOrEqual(t, after.Emissions, before.Emissions+1)
	assert.GreaterOrEqual(t, after.HandlersInvoked, before.HandlersInvoked+1)

	handlers := after.Handlers
	obj.Dispose()
	assert.Equal(t, handlers-1, ReadStats().Handlers)
}

func TestConfigureParseCacheSize(t *testing.T) {
	old := current.Load()
	t.Cleanup(func() {
		current.Store(old)
		reg().resizeParseCache(loadConfig().parseCacheSize)
	})

	Configure(WithParseCacheSize(2))
	assert.Equal(t, 2, loadConfig().parseCacheSize)

	Configure(WithParseCacheSize(-1))
	assert.Equal(t, 2, loadConfig().parseCacheSize, "non-positive sizes are ignored")

	owner := newTestType(t, SignalSpec{Name: "a"}, SignalSpec{Name: "b"}, SignalSpec{Name: "c"})
	for _, name := range []string{"a", "b", "c"} {
		_, _, ok := ParseName(name, owner, false)
		require.True(t, ok)
	}
	assert.LessOrEqual(t, reg().parseCache.Len(), 2)
}
