package signalman

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/zoobzio/signalman/bus"
)

// Collector exports bus statistics to Prometheus.
type Collector struct {
	types           *prometheus.Desc
	signals         *prometheus.Desc
	hooks           *prometheus.Desc
	quarks          *prometheus.Desc
	objects         *prometheus.Desc
	handlers        *prometheus.Desc
	emissions       *prometheus.Desc
	handlersInvoked *prometheus.Desc
	handlerPanics   *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector whose metric names start with namespace.
func NewCollector(namespace string) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "bus", name), help, nil, nil)
	}
	return &Collector{
		types:           desc("types", "Registered object types."),
		signals:         desc("signals", "Registered signals."),
		hooks:           desc("emission_hooks", "Installed emission hooks."),
		quarks:          desc("quarks", "Interned detail strings."),
		objects:         desc("objects", "Live objects."),
		handlers:        desc("handlers", "Connected handlers."),
		emissions:       desc("emissions_total", "Emissions delivered to handlers."),
		handlersInvoked: desc("handler_invocations_total", "Handler and class handler invocations."),
		handlerPanics:   desc("handler_panics_total", "Panics recovered during emission."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.types
	ch <- c.signals
	ch <- c.hooks
	ch <- c.quarks
	ch <- c.objects
	ch <- c.handlers
	ch <- c.emissions
	ch <- c.handlersInvoked
	ch <- c.handlerPanics
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := bus.ReadStats()
	ch <- prometheus.MustNewConstMetric(c.types, prometheus.GaugeValue, float64(s.Types))
	ch <- prometheus.MustNewConstMetric(c.signals, prometheus.GaugeValue, float64(s.Signals))
	ch <- prometheus.MustNewConstMetric(c.hooks, prometheus.GaugeValue, float64(s.Hooks))
	ch <- prometheus.MustNewConstMetric(c.quarks, prometheus.GaugeValue, float64(s.Quarks))
	ch <- prometheus.MustNewConstMetric(c.objects, prometheus.GaugeValue, float64(s.Objects))
	ch <- prometheus.MustNewConstMetric(c.handlers, prometheus.GaugeValue, float64(s.Handlers))
	ch <- prometheus.MustNewConstMetric(c.emissions, prometheus.CounterValue, float64(s.Emissions))
	ch <- prometheus.MustNewConstMetric(c.handlersInvoked, prometheus.CounterValue, float64(s.HandlersInvoked))
	ch <- prometheus.MustNewConstMetric(c.handlerPanics, prometheus.CounterValue, float64(s.HandlerPanics))
}
