// Package metrics provides Prometheus metrics for the dunk calculator service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Calculation outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
)

// Manager manages all Prometheus metrics for the calculator service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Engine metrics
	calculations       *prometheus.CounterVec
	calculationLatency *prometheus.HistogramVec
	tiers              *prometheus.CounterVec
	feasibility        *prometheus.CounterVec
	invalidInputs      *prometheus.CounterVec
	estimatedReach     prometheus.Counter

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByEndpoint *prometheus.CounterVec
	errorRateByType     *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// defaultLatencyBuckets covers sub-microsecond to millisecond calculations.
var defaultLatencyBuckets = []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 1000} //nolint:gochecknoglobals // constant buckets

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "dunkcalc",
		subsystem:        "engine",
		histogramBuckets: defaultLatencyBuckets,
		constLabels:      prometheus.Labels{},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) histogramVec(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
	return promauto.With(m.registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.constLabels,
	}, labels)
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.calculations = m.counterVec("calculations_total",
		"Total number of calculations by calculator and outcome", "calculator", "outcome")
	m.calculationLatency = m.histogramVec("calculation_duration_microseconds",
		"Calculation duration in microseconds", m.histogramBuckets, "calculator")
	m.tiers = m.counterVec("tier_total",
		"Feasibility tiers produced by the classifier", "tier")
	m.feasibility = m.counterVec("feasibility_total",
		"Dunk feasibility verdicts", "verdict")
	m.invalidInputs = m.counterVec("invalid_input_total",
		"Rejected inputs by field and error kind", "field", "kind")
	m.estimatedReach = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "estimated_reach_total",
		Help:        "Requirement calculations that estimated standing reach from height",
		ConstLabels: m.constLabels,
	})

	// HTTP Performance Metrics - User experience indicators
	m.httpRequests = m.counterVec("http_requests_total",
		"Total number of HTTP requests by endpoint and method", "endpoint", "method", "status_code")
	m.httpRequestDuration = m.histogramVec("http_request_duration_milliseconds",
		"HTTP request duration in milliseconds", prometheus.DefBuckets, "endpoint", "method", "status_code")
	m.errorRateByEndpoint = m.counterVec("errors_by_endpoint_total",
		"Total number of errors by endpoint", "endpoint", "method", "error_type")
	m.errorRateByType = m.counterVec("errors_by_type_total",
		"Total number of errors by type", "error_type", "severity")

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_memory_usage_bytes",
		Help:        "System memory usage in bytes",
		ConstLabels: m.constLabels,
	})
	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_goroutine_count",
		Help:        "Number of goroutines",
		ConstLabels: m.constLabels,
	})
	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_gc_pause_time_milliseconds",
		Help:        "GC pause time in milliseconds",
		Buckets:     []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		ConstLabels: m.constLabels,
	})
}

// RecordCalculation counts a calculation and observes its duration.
func (m *Manager) RecordCalculation(calculator, outcome string, durationMicros float64) {
	m.calculations.WithLabelValues(calculator, outcome).Inc()
	m.calculationLatency.WithLabelValues(calculator).Observe(durationMicros)
}

// RecordTier counts a classification result.
func (m *Manager) RecordTier(tier string) { m.tiers.WithLabelValues(tier).Inc() }

// RecordFeasibility counts a feasibility verdict.
func (m *Manager) RecordFeasibility(verdict string) { m.feasibility.WithLabelValues(verdict).Inc() }

// RecordInvalidInput counts a rejected input field.
func (m *Manager) RecordInvalidInput(field, kind string) {
	if field == "" {
		field = "unknown"
	}
	m.invalidInputs.WithLabelValues(field, kind).Inc()
}

// RecordEstimatedReach counts a reach estimate.
func (m *Manager) RecordEstimatedReach() { m.estimatedReach.Inc() }

// RecordCalculation records on the global manager.
func RecordCalculation(calculator, outcome string, durationMicros float64) {
	globalManager.RecordCalculation(calculator, outcome, durationMicros)
}

// RecordTier records on the global manager.
func RecordTier(tier string) { globalManager.RecordTier(tier) }

// RecordFeasibility records on the global manager.
func RecordFeasibility(verdict string) { globalManager.RecordFeasibility(verdict) }

// RecordInvalidInput records on the global manager.
func RecordInvalidInput(field, kind string) { globalManager.RecordInvalidInput(field, kind) }

// RecordEstimatedReach records on the global manager.
func RecordEstimatedReach() { globalManager.RecordEstimatedReach() }

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
