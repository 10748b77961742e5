package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmissionHookSeesEveryInstance(t *testing.T) {
	owner := newTestType(t, SignalSpec{Name: "hooked", Params: []Type{TypeInt64}, Flags: SignalDetailed})
	id := mustLookup(t, "hooked", owner)
	a := NewObject(owner, nil)
	defer a.Dispose()
	b := NewObject(owner, nil)
	defer b.Dispose()

	var seen []int64
	hook, err := AddEmissionHook(id, 0, func(hint InvocationHint, values []Value) bool {
		assert.Equal(t, id, hint.Signal)
		n, _ := values[1].AsInt64()
		seen = append(seen, n)
		return true
	})
	require.NoError(t, err)

	_, _, err = a.Emit(id, 0, Int64Value(1))
	require.NoError(t, err)
	_, _, err = b.Emit(id, 0, Int64Value(2))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, seen)

	require.NoError(t, RemoveEmissionHook(id, hook))
	_, _, err = a.Emit(id, 0, Int64Value(3))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, seen)

	assert.ErrorIs(t, RemoveEmissionHook(id, hook), ErrHookNotFound)
}

func TestEmissionHookDetailFilter(t *testing.T) {
	owner := newTestType(t, SignalSpec{Name: "filtered", Flags: SignalDetailed})
	id := mustLookup(t, "filtered", owner)
	obj := NewObject(owner, nil)
	defer obj.Dispose()

	d := QuarkFromString(uniqueName(t, "d"))
	var calls int
	hook, err := AddEmissionHook(id, d, func(InvocationHint, []Value) bool {
		calls++
		return true
	})
	require.NoError(t, err)
	defer RemoveEmissionHook(id, hook) //nolint:errcheck

	_, _, err = obj.Emit(id, 0)
	require.NoError(t, err)
	_, _, err = obj.Emit(id, d)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestEmissionHookRemovesItself(t *testing.T) {
	owner := newTestType(t, SignalSpec{Name: "oneshot"})
	id := mustLookup(t, "oneshot", owner)
	obj := NewObject(owner, nil)
	defer obj.Dispose()

	var calls int
	_, err := AddEmissionHook(id, 0, func(InvocationHint, []Value) bool {
		calls++
		return false
	})
	require.NoError(t, err)

	for range 3 {
		_, _, err = obj.Emit(id, 0)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, calls)
}

func TestEmissionHookRejected(t *testing.T) {
	owner := newTestType(t,
		SignalSpec{Name: "private", Flags: SignalNoHooks},
		SignalSpec{Name: "flat"},
	)
	noop := func(InvocationHint, []Value) bool { return true }

	_, err := AddEmissionHook(mustLookup(t, "private", owner), 0, noop)
	assert.ErrorIs(t, err, ErrHooksDisabled)

	_, err = AddEmissionHook(mustLookup(t, "flat", owner), QuarkFromString(uniqueName(t, "d")), noop)
	assert.ErrorIs(t, err, ErrDetailNotAllowed)

	_, err = AddEmissionHook(0, 0, noop)
	assert.ErrorIs(t, err, ErrUnknownSignal)
}

// TestObserverDynamic verifies that observers attach to signals registered
// after the observer was created.
func TestObserverDynamic(t *testing.T) {
	var received []SignalID
	observer := Observe(func(hint InvocationHint, _ []Value) {
		received = append(received, hint.Signal)
	})
	defer observer.Close()

	owner := newTestType(t,
		SignalSpec{Name: "first"},
		SignalSpec{Name: "second"},
		SignalSpec{Name: "hidden", Flags: SignalNoHooks},
	)
	first := mustLookup(t, "first", owner)
	second := mustLookup(t, "second", owner)
	hidden := mustLookup(t, "hidden", owner)
	obj := NewObject(owner, nil)
	defer obj.Dispose()

	for _, id := range []SignalID{first, second, hidden} {
		_, _, err := obj.Emit(id, 0)
		require.NoError(t, err)
	}

	// Other tests may emit concurrently registered signals; only ours count
	var ours []SignalID
	for _, id := range received {
		if id == first || id == second || id == hidden {
			ours = append(ours, id)
		}
	}
	assert.Equal(t, []SignalID{first, second}, ours)
}

func TestObserverWhitelist(t *testing.T) {
	owner := newTestType(t, SignalSpec{Name: "wanted"}, SignalSpec{Name: "ignored"})
	wanted := mustLookup(t, "wanted", owner)
	ignored := mustLookup(t, "ignored", owner)
	obj := NewObject(owner, nil)
	defer obj.Dispose()

	var calls int
	observer := Observe(func(InvocationHint, []Value) { calls++ }, wanted)
	assert.Equal(t, 1, observer.Signals())

	_, _, err := obj.Emit(wanted, 0)
	require.NoError(t, err)
	_, _, err = obj.Emit(ignored, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	observer.Close()
	observer.Close()
	assert.Equal(t, 0, observer.Signals())

	_, _, err = obj.Emit(wanted, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
