package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultNamespace prefixes every metric exported by this package.
const DefaultNamespace = "rx"

// Metrics owns a Prometheus registry and the collectors describing subject
// activity. A zero Metrics is not usable; construct one with New.
// Safe for concurrent use.
type Metrics struct {
	namespace    string
	registry     *prometheus.Registry
	deliveries   *prometheus.CounterVec
	goCollectors bool
}

// Option configures Metrics construction.
type Option func(*Metrics)

// WithNamespace overrides the metric namespace. Empty values are ignored.
func WithNamespace(namespace string) Option {
	return func(m *Metrics) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithRegistry uses the given registry instead of a private one.
// Useful when the process already exposes a registry of its own.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Metrics) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// WithGoCollectors additionally registers the standard Go runtime and
// process collectors on the registry.
func WithGoCollectors() Option {
	return func(m *Metrics) {
		m.goCollectors = true
	}
}

// New creates a Metrics instance with a private registry unless
// WithRegistry supplies one. The delivery counter is registered
// immediately; subscriber gauges are added per subject via
// TrackSubscribers or Instrument.
func New(opts ...Option) *Metrics {
	m := &Metrics{
		namespace: DefaultNamespace,
		registry:  prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.deliveries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "subject_deliveries_total",
		Help:      "Total number of values delivered through instrumented subjects.",
	}, []string{"subject"})
	m.registry.MustRegister(m.deliveries)

	if m.goCollectors {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return m
}

// TrackSubscribers registers a gauge that reports the subject's current
// subscriber count, sampled on every scrape. The subject name becomes a
// constant label, so each name can be tracked at most once per registry.
func (m *Metrics) TrackSubscribers(subject string, count func() int) error {
	if subject == "" {
		return ErrEmptySubjectName
	}
	if count == nil {
		return ErrNilCountFunc
	}

	gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Name:        "subject_subscribers",
		Help:        "Current number of subscribers registered on the subject.",
		ConstLabels: prometheus.Labels{"subject": subject},
	}, func() float64 { return float64(count()) })

	if err := m.registry.Register(gauge); err != nil {
		return fmt.Errorf("%w: %v", ErrAlreadyTracked, err)
	}
	return nil
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry for custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
