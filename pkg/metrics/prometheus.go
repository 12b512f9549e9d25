// Package metrics provides Prometheus metrics for the SPADL conversion pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics exposed by the converter.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Pipeline throughput.
	eventsRead      prometheus.Counter
	actionsProduced prometheus.Counter
	actionsByType   *prometheus.CounterVec
	nonActions      prometheus.Counter
	dribblesAdded   prometheus.Counter

	// Pipeline outcomes.
	conversions        prometheus.Counter
	conversionDuration prometheus.Histogram
	schemaFailures     prometheus.Counter
	missingIntegration prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "spadl",
		subsystem:        "convert",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.eventsRead = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_read_total",
		Help:      "Total number of raw events read from providers",
	})

	m.actionsProduced = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "actions_produced_total",
		Help:      "Total number of SPADL actions produced",
	})

	m.actionsByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "actions_by_type_total",
			Help:      "Total number of SPADL actions produced per action type",
		},
		[]string{"type"},
	)

	m.nonActions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "non_actions_dropped_total",
		Help:      "Total number of events classified as non-actions and dropped",
	})

	m.dribblesAdded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dribbles_synthesized_total",
		Help:      "Total number of synthetic dribble actions inserted",
	})

	m.conversions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "conversions_total",
		Help:      "Total number of completed dataset conversions",
	})

	m.conversionDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "conversion_duration_milliseconds",
		Help:      "Histogram of whole-dataset conversion duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.schemaFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "schema_failures_total",
		Help:      "Total number of action tables rejected by schema validation",
	})

	m.missingIntegration = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "missing_integration_total",
		Help:      "Total number of conversions refused due to an unavailable provider integration",
	})
}

// RecordEventsRead adds n to the raw-event counter.
func RecordEventsRead(n int) {
	globalManager.eventsRead.Add(float64(n))
}

// RecordActionProduced increments the action counters for one produced action.
func RecordActionProduced(typeName string) {
	globalManager.actionsProduced.Inc()
	globalManager.actionsByType.WithLabelValues(typeName).Inc()
}

// RecordNonActionDropped increments the dropped non-action counter.
func RecordNonActionDropped() {
	globalManager.nonActions.Inc()
}

// RecordDribblesSynthesized adds n to the synthetic dribble counter.
func RecordDribblesSynthesized(n int) {
	globalManager.dribblesAdded.Add(float64(n))
}

// RecordConversion increments the completed conversion counter.
func RecordConversion() {
	globalManager.conversions.Inc()
}

// RecordConversionDuration records a whole-dataset conversion duration.
func RecordConversionDuration(latencyMs float64) {
	globalManager.conversionDuration.Observe(latencyMs)
}

// RecordSchemaFailure increments the schema rejection counter.
func RecordSchemaFailure() {
	globalManager.schemaFailures.Inc()
}

// RecordMissingIntegration increments the unavailable-integration counter.
func RecordMissingIntegration() {
	globalManager.missingIntegration.Inc()
}

// Registry returns the custom Prometheus registry used by our metrics.
// Embedding services can expose it through promhttp.
func Registry() *prometheus.Registry {
	return customRegistry
}
