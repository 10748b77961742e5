package bus

import (
	"log/slog"
	"sync/atomic"
)

const (
	// defaultParseCacheSize bounds the number of parsed "name::detail"
	// specs kept by ParseName.
	defaultParseCacheSize = 256
)

// Option configures the process-wide bus.
type Option func(*config)

// PanicHandler is called when a handler panics during emission.
// Receives the signal name and the recovered panic value.
type PanicHandler func(signal string, recovered any)

type config struct {
	logger         *slog.Logger
	panicHandler   PanicHandler
	parseCacheSize int
}

var current atomic.Pointer[config]

func loadConfig() *config {
	if c := current.Load(); c != nil {
		return c
	}
	return &config{parseCacheSize: defaultParseCacheSize}
}

// Configure applies options to the process-wide bus.
// Options not passed keep their current value.
func Configure(opts ...Option) {
	for {
		old := current.Load()
		cp := config{parseCacheSize: defaultParseCacheSize}
		if old != nil {
			cp = *old
		}
		for _, opt := range opts {
			opt(&cp)
		}
		if current.CompareAndSwap(old, &cp) {
			if old == nil || old.parseCacheSize != cp.parseCacheSize {
				reg().resizeParseCache(cp.parseCacheSize)
			}
			return
		}
	}
}

// WithLogger sets the logger used for bus diagnostics.
// By default the bus logs through slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithPanicHandler sets a callback to be invoked when a handler panics.
// The emission is aborted either way and Emit returns a *PanicError.
func WithPanicHandler(handler PanicHandler) Option {
	return func(c *config) {
		c.panicHandler = handler
	}
}

// WithParseCacheSize sets how many parsed signal specs ParseName keeps.
// Default is 256. Non-positive sizes are ignored.
func WithParseCacheSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.parseCacheSize = size
		}
	}
}

// Logger returns the logger the bus reports through.
func Logger() *slog.Logger {
	if l := loadConfig().logger; l != nil {
		return l
	}
	return slog.Default().With("component", "signalman.bus")
}
