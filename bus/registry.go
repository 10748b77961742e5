package bus

import (
	"fmt"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	defaultRegistry *registry
	defaultOnce     sync.Once
)

// registry holds the process-wide type and signal tables.
type registry struct {
	mu         sync.RWMutex
	types      []*typeNode // indexed by Type; fundamentals are nil
	typeNames  map[string]Type
	signals    []*signalNode // indexed by SignalID; slot 0 unused
	hooks      map[SignalID][]*emissionHook
	observers  []*Observer
	parseCache *lru.Cache[parseKey, parsed]

	emissions       atomic.Uint64
	handlersInvoked atomic.Uint64
	handlerPanics   atomic.Uint64
	handlers        atomic.Int64
	objects         atomic.Int64
}

type typeNode struct {
	name    string
	parent  Type
	signals map[string]SignalID
}

// reg returns the process-wide registry, creating it if necessary.
func reg() *registry {
	defaultOnce.Do(func() {
		cache, err := lru.New[parseKey, parsed](loadConfig().parseCacheSize)
		if err != nil {
			panic(fmt.Sprintf("bus: parse cache: %v", err))
		}
		defaultRegistry = &registry{
			types:      make([]*typeNode, firstDynamicType),
			typeNames:  make(map[string]Type),
			signals:    make([]*signalNode, 1),
			hooks:      make(map[SignalID][]*emissionHook),
			parseCache: cache,
		}
	})
	return defaultRegistry
}

// RegisterType adds an object type and its signals.
// Registration mistakes are programming errors and panic.
func RegisterType(info TypeInfo) Type {
	return reg().registerType(info)
}

func (r *registry) registerType(info TypeInfo) Type {
	r.mu.Lock()
	defer r.mu.Unlock()

	if info.Name == "" {
		panic("bus: type name cannot be empty")
	}
	if _, exists := r.typeNames[info.Name]; exists {
		panic(fmt.Sprintf("bus: type %q already registered", info.Name))
	}
	for _, n := range fundamentalNames {
		if n == info.Name {
			panic(fmt.Sprintf("bus: type name %q is reserved", info.Name))
		}
	}
	if !r.isObjectLocked(info.Parent) {
		panic(fmt.Sprintf("bus: parent of %q is not an object type", info.Name))
	}

	t := Type(len(r.types))
	node := &typeNode{
		name:    info.Name,
		parent:  info.Parent,
		signals: make(map[string]SignalID, len(info.Signals)),
	}
	r.types = append(r.types, node)
	r.typeNames[info.Name] = t

	for _, spec := range info.Signals {
		r.addSignalLocked(t, node, spec)
	}
	return t
}

// AddSignals registers further signals on an existing object type, for
// signals whose parameters or return refer to the type itself.
// Registration mistakes panic as in RegisterType.
func AddSignals(owner Type, specs ...SignalSpec) {
	r := reg()
	r.mu.Lock()
	defer r.mu.Unlock()

	if owner < firstDynamicType || int(owner) >= len(r.types) {
		panic(fmt.Sprintf("bus: cannot add signals to %d: not a registered object type", owner))
	}
	node := r.types[owner]
	for _, spec := range specs {
		r.addSignalLocked(owner, node, spec)
	}
}

func (r *registry) addSignalLocked(owner Type, node *typeNode, spec SignalSpec) {
	if !validSignalName(spec.Name) {
		panic(fmt.Sprintf("bus: invalid signal name %q on %s", spec.Name, node.name))
	}
	name := canonicalName(spec.Name)
	if _, exists := r.lookupLocked(name, owner); exists {
		panic(fmt.Sprintf("bus: signal %q already exists on %s", name, node.name))
	}
	for i, p := range spec.Params {
		if !r.validTypeLocked(p) || p == TypeNone {
			panic(fmt.Sprintf("bus: signal %q parameter %d has invalid type", name, i))
		}
	}
	ret := spec.Return
	if ret == TypeInvalid {
		ret = TypeNone
	}
	if !r.validTypeLocked(ret) {
		panic(fmt.Sprintf("bus: signal %q has invalid return type", name))
	}

	sig := &signalNode{
		id:          SignalID(len(r.signals)),
		name:        name,
		owner:       owner,
		params:      append([]Type(nil), spec.Params...),
		ret:         ret,
		flags:       spec.Flags,
		accumulator: spec.Accumulator,
		class:       spec.ClassHandler,
	}
	r.signals = append(r.signals, sig)
	node.signals[name] = sig.id

	if !sig.flags.Has(SignalNoHooks) {
		r.attachObserversLocked(sig.id)
	}
}

func (r *registry) validTypeLocked(t Type) bool {
	if t == TypeInvalid {
		return false
	}
	return int(t) < len(r.types)
}

func (r *registry) isObjectLocked(t Type) bool {
	for cur := t; cur != TypeInvalid; {
		if cur == TypeObject {
			return true
		}
		if cur < firstDynamicType || int(cur) >= len(r.types) {
			return false
		}
		cur = r.types[cur].parent
	}
	return false
}

func (r *registry) typeNode(t Type) *typeNode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if int(t) >= len(r.types) {
		return nil
	}
	return r.types[t]
}

func (r *registry) typeByName(name string) (Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.typeNames[name]
	return t, ok
}

func (r *registry) signal(id SignalID) *signalNode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id == 0 || int(id) >= len(r.signals) {
		return nil
	}
	return r.signals[id]
}

func (r *registry) lookupSignal(name string, owner Type) (SignalID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookupLocked(name, owner)
}

func (r *registry) lookupLocked(name string, owner Type) (SignalID, bool) {
	for cur := owner; cur >= firstDynamicType && int(cur) < len(r.types); cur = r.types[cur].parent {
		if id, ok := r.types[cur].signals[name]; ok {
			return id, true
		}
	}
	return 0, false
}

func (r *registry) listSignals(owner Type) []SignalID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []SignalID
	for _, sig := range r.signals[1:] {
		if sig.owner == owner {
			ids = append(ids, sig.id)
		}
	}
	return ids
}

func (r *registry) cachedParse(key parseKey) (parsed, bool) {
	return r.parseCache.Get(key)
}

func (r *registry) storeParse(key parseKey, p parsed) {
	r.parseCache.Add(key, p)
}

func (r *registry) resizeParseCache(size int) {
	r.parseCache.Resize(size)
}
