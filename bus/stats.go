package bus

// Stats provides runtime metrics for the process-wide bus.
type Stats struct {
	// Types is the number of registered object types.
	Types int

	// Signals is the number of registered signals.
	Signals int

	// Hooks is the number of installed emission hooks.
	Hooks int

	// Quarks is the number of interned detail strings.
	Quarks int

	// Objects is the number of live (not disposed, not collected) objects.
	Objects int64

	// Handlers is the number of connected handlers across all objects.
	Handlers int64

	// Emissions is the number of emissions that reached their handlers.
	Emissions uint64

	// HandlersInvoked counts handler and class handler invocations.
	HandlersInvoked uint64

	// HandlerPanics counts panics recovered during emission.
	HandlerPanics uint64
}

// ReadStats returns a snapshot of the bus counters.
func ReadStats() Stats {
	r := reg()
	r.mu.RLock()
	stats := Stats{
		Types:   len(r.types) - int(firstDynamicType),
		Signals: len(r.signals) - 1,
	}
	for _, hooks := range r.hooks {
		stats.Hooks += len(hooks)
	}
	r.mu.RUnlock()

	stats.Quarks = quarkCount()
	stats.Objects = r.objects.Load()
	stats.Handlers = r.handlers.Load()
	stats.Emissions = r.emissions.Load()
	stats.HandlersInvoked = r.handlersInvoked.Load()
	stats.HandlerPanics = r.handlerPanics.Load()
	return stats
}
