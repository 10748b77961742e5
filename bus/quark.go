package bus

import "sync"

// Quark is an interned string. The zero Quark stands for "no detail".
// Quarks are never freed; two quarks are equal exactly when their strings are.
type Quark uint32

var quarks = struct {
	mu     sync.RWMutex
	byName map[string]Quark
	names  []string
}{
	byName: make(map[string]Quark),
	names:  []string{""},
}

// QuarkFromString interns s. The empty string maps to the zero Quark.
func QuarkFromString(s string) Quark {
	if s == "" {
		return 0
	}
	if q := QuarkTryString(s); q != 0 {
		return q
	}

	quarks.mu.Lock()
	defer quarks.mu.Unlock()

	// Double-check: another goroutine may have interned it
	if q, ok := quarks.byName[s]; ok {
		return q
	}
	q := Quark(len(quarks.names))
	quarks.names = append(quarks.names, s)
	quarks.byName[s] = q
	return q
}

// QuarkTryString returns the quark for s, or zero if s was never interned.
func QuarkTryString(s string) Quark {
	quarks.mu.RLock()
	defer quarks.mu.RUnlock()
	return quarks.byName[s]
}

// String returns the interned string.
func (q Quark) String() string {
	quarks.mu.RLock()
	defer quarks.mu.RUnlock()
	if int(q) >= len(quarks.names) {
		return ""
	}
	return quarks.names[q]
}

func quarkCount() int {
	quarks.mu.RLock()
	defer quarks.mu.RUnlock()
	return len(quarks.names) - 1
}
