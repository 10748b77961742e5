package bus

import (
	"strings"
)

// SignalID identifies a registered signal. Zero is never a valid id.
type SignalID uint32

// SignalFlags are fixed when a signal is registered.
type SignalFlags uint32

const (
	// SignalRunFirst invokes the class handler before connected handlers.
	SignalRunFirst SignalFlags = 1 << iota

	// SignalRunLast invokes the class handler after handlers connected
	// without the after flag.
	SignalRunLast

	// SignalRunCleanup invokes the class handler once all handlers ran.
	// Its return value is not accumulated.
	SignalRunCleanup

	// SignalNoRecurse is recorded for callers; the bus does not restart
	// recursive emissions.
	SignalNoRecurse

	// SignalDetailed allows details on connect and emit.
	SignalDetailed

	// SignalAction marks signals meant to be emitted by outside callers.
	SignalAction

	// SignalNoHooks forbids emission hooks.
	SignalNoHooks
)

var flagNames = []struct {
	flag SignalFlags
	name string
}{
	{SignalRunFirst, "run-first"},
	{SignalRunLast, "run-last"},
	{SignalRunCleanup, "run-cleanup"},
	{SignalNoRecurse, "no-recurse"},
	{SignalDetailed, "detailed"},
	{SignalAction, "action"},
	{SignalNoHooks, "no-hooks"},
}

// Has reports whether all bits of x are set.
func (f SignalFlags) Has(x SignalFlags) bool { return f&x == x }

// String returns the flags joined with "|".
func (f SignalFlags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}

// Phase is the emission stage a handler runs in.
type Phase int

const (
	PhaseRunFirst Phase = iota
	PhaseRunLast
	PhaseRunCleanup
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunFirst:
		return "run-first"
	case PhaseRunLast:
		return "run-last"
	case PhaseRunCleanup:
		return "run-cleanup"
	default:
		return "unknown"
	}
}

// InvocationHint describes the emission an accumulator or hook runs in.
type InvocationHint struct {
	Signal SignalID
	Detail Quark
	Phase  Phase
}

// Accumulator folds a handler's return value into the running total.
// Returning false stops delivery to the remaining handlers. An error aborts
// the emission and is returned from Emit.
type Accumulator func(hint InvocationHint, total *Value, ret Value) (bool, error)

// ClassHandler is the per-type default handler of a signal.
type ClassHandler func(values []Value) (Value, error)

// SignalSpec describes a signal to register with its owner type.
type SignalSpec struct {
	Name         string
	Params       []Type
	Return       Type
	Flags        SignalFlags
	Accumulator  Accumulator
	ClassHandler ClassHandler
}

// SignalQuery is the registered shape of a signal.
type SignalQuery struct {
	ID     SignalID
	Name   string
	Owner  Type
	Params []Type
	Return Type
	Flags  SignalFlags
}

type signalNode struct {
	id          SignalID
	name        string
	owner       Type
	params      []Type
	ret         Type
	flags       SignalFlags
	accumulator Accumulator
	class       ClassHandler
}

func (n *signalNode) query() SignalQuery {
	return SignalQuery{
		ID:     n.id,
		Name:   n.name,
		Owner:  n.owner,
		Params: append([]Type(nil), n.params...),
		Return: n.ret,
		Flags:  n.flags,
	}
}

// canonicalName folds '_' into '-' so both spellings resolve alike.
func canonicalName(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

func validSignalName(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '-' || c == '_'):
		default:
			return false
		}
	}
	return true
}

// LookupSignal resolves a signal by name on owner or one of its ancestors.
func LookupSignal(name string, owner Type) (SignalID, bool) {
	return reg().lookupSignal(canonicalName(name), owner)
}

// QuerySignal returns the registered shape of id.
func QuerySignal(id SignalID) (SignalQuery, bool) {
	n := reg().signal(id)
	if n == nil {
		return SignalQuery{}, false
	}
	return n.query(), true
}

// ListSignals returns the ids of the signals registered directly on owner.
func ListSignals(owner Type) []SignalID {
	return reg().listSignals(owner)
}

type parseKey struct {
	owner Type
	spec  string
	force bool
}

type parsed struct {
	id     SignalID
	detail Quark
}

// ParseName converts "name" or "name::detail" into a signal id and detail
// quark for owner. With forceDetail the detail is interned; otherwise a
// detail string that was never interned fails the parse. Details are only
// accepted for signals registered with SignalDetailed.
func ParseName(spec string, owner Type, forceDetail bool) (SignalID, Quark, bool) {
	r := reg()
	key := parseKey{owner: owner, spec: spec, force: forceDetail}
	if p, ok := r.cachedParse(key); ok {
		return p.id, p.detail, true
	}

	name, detail, hasDetail := strings.Cut(spec, "::")
	if name == "" {
		return 0, 0, false
	}
	id, ok := r.lookupSignal(canonicalName(name), owner)
	if !ok {
		return 0, 0, false
	}

	var q Quark
	if hasDetail {
		n := r.signal(id)
		if detail == "" || !n.flags.Has(SignalDetailed) {
			return 0, 0, false
		}
		if forceDetail {
			q = QuarkFromString(detail)
		} else {
			q = QuarkTryString(detail)
		}
		if q == 0 {
			return 0, 0, false
		}
	}

	// Only successes are cached: a later intern can make a miss succeed
	r.storeParse(key, parsed{id: id, detail: q})
	return id, q, true
}
