package middleware

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolver selects the active sibling index for a location.
// *viewset.Set satisfies this interface.
type Resolver interface {
	Resolve(location string, defaultIndex int) int
}

// ResolverFunc is a function adapter for Resolver.
type ResolverFunc func(location string, defaultIndex int) int

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(location string, defaultIndex int) int {
	return f(location, defaultIndex)
}

// templater is implemented by resolvers that can name their templates;
// it lets the metrics wrapper distinguish a root fallback from a real match.
type templater interface {
	Template(i int) string
}

// MetricsConfig configures the Prometheus metrics wrapper.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "outlet").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for resolve duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics wrapper.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "outlet",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for resolution.
type metrics struct {
	resolutionsTotal *prometheus.CounterVec
	resolveDuration  prometheus.Histogram
}

// globalMetrics is the singleton metrics instance.
// Created on the first call to Prometheus().
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

// initMetrics initializes the Prometheus metrics.
func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		resolutionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "resolutions_total",
			Help:        "Total number of active-sibling resolutions by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),

		resolveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "resolve_duration_seconds",
			Help:        "Active-sibling resolution duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

// Prometheus creates a wrapper that collects Prometheus metrics for every
// resolution.
//
// Metrics collected:
//   - outlet_resolutions_total: Counter of resolutions by outcome
//     ("active", "fallback", "none")
//   - outlet_resolve_duration_seconds: Histogram of resolution duration
//
// The "fallback" outcome is reported when the resolved template is the
// universal root "/"; this requires the wrapped resolver to expose
// Template(int) string, as *viewset.Set does. Outcomes never use the
// location as a label, keeping cardinality bounded.
func Prometheus(opts ...MetricsOption) func(Resolver) Resolver {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Initialize metrics once
	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return func(next Resolver) Resolver {
		tpl, _ := next.(templater)

		return ResolverFunc(func(location string, defaultIndex int) int {
			start := time.Now()
			active := next.Resolve(location, defaultIndex)
			m.resolveDuration.Observe(time.Since(start).Seconds())

			outcome := "active"
			switch {
			case active == defaultIndex:
				outcome = "none"
			case tpl != nil && tpl.Template(active) == "/":
				outcome = "fallback"
			}
			m.resolutionsTotal.WithLabelValues(outcome).Inc()

			return active
		})
	}
}
