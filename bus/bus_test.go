package bus

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
)

var typeSeq atomic.Uint64

// newTestType registers a uniquely named object type with the given signals.
func newTestType(t *testing.T, signals ...SignalSpec) Type {
	t.Helper()
	return RegisterType(TypeInfo{
		Name:    fmt.Sprintf("%s-%d", t.Name(), typeSeq.Add(1)),
		Parent:  TypeObject,
		Signals: signals,
	})
}

// newChildType registers a uniquely named subtype of parent.
func newChildType(t *testing.T, parent Type, signals ...SignalSpec) Type {
	t.Helper()
	return RegisterType(TypeInfo{
		Name:    fmt.Sprintf("%s-child-%d", t.Name(), typeSeq.Add(1)),
		Parent:  parent,
		Signals: signals,
	})
}

// uniqueName returns a string never used before in this process.
func uniqueName(t *testing.T, prefix string) string {
	return fmt.Sprintf("%s-%s-%d", t.Name(), prefix, typeSeq.Add(1))
}

// mustLookup resolves a signal registered by newTestType.
func mustLookup(t *testing.T, name string, owner Type) SignalID {
	t.Helper()
	id, ok := LookupSignal(name, owner)
	if !ok {
		t.Fatalf("signal %q not registered on %s", name, owner)
	}
	return id
}

// captureLogs routes bus logs into a buffer for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := current.Load()
	Configure(WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	t.Cleanup(func() { current.Store(old) })
	return &buf
}

// returning builds a closure that returns v and counts calls.
func returning(v Value, calls *int) Closure {
	return Closure{Invoke: func([]Value) (Value, error) {
		*calls++
		return v, nil
	}}
}
