// Package metrics provides Prometheus metrics for the tradecalc service.
package metrics

import (
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultNamespace       = "tradecalc"
	defaultSubsystem       = "api"
	defaultRefreshInterval = 10 * time.Second
)

// defaultLatencyBuckets spans sub-millisecond calculator runs up to slow requests.
var defaultLatencyBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 1000} //nolint:gochecknoglobals // read-only bucket layout

// Calculation outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotReady = "not_ready"
	OutcomeInvalid  = "invalid"
)

// Manager manages all Prometheus metrics for the tradecalc service.
type Manager struct {
	namespace       string
	subsystem       string
	latencyBuckets  []float64
	enabled         bool
	refreshInterval time.Duration
	constLabels     prometheus.Labels
	registry        prometheus.Registerer

	// Calculator metrics
	calculations       *prometheus.CounterVec
	calculationLatency *prometheus.HistogramVec

	// Quiz metrics
	quizSessionsActive    prometheus.Gauge
	quizSessionsCreated   prometheus.Counter
	quizSessionsSubmitted prometheus.Counter
	quizSessionsEvicted   prometheus.Counter
	quizRecommendations   *prometheus.CounterVec

	// Handoff metrics
	handoffPending  prometheus.Gauge
	handoffIssued   prometheus.Counter
	handoffConsumed prometheus.Counter
	handoffMissed   prometheus.Counter

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	validationErrors    *prometheus.CounterVec

	// Error Metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec
	errorLatency         *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegisterer(customRegistry))
}

// Init replaces the global manager with one built from opts on a fresh
// registry. Call it once at startup before serving.
func Init(opts ...Option) error {
	reg := prometheus.NewRegistry()
	var m *Manager
	if err := register(func() {
		m = NewManager(append(opts, WithRegisterer(reg))...)
	}); err != nil {
		return err
	}
	customRegistry = reg
	globalManager = m
	return nil
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:       defaultNamespace,
		subsystem:       defaultSubsystem,
		latencyBuckets:  slices.Clone(defaultLatencyBuckets),
		enabled:         true,
		refreshInterval: defaultRefreshInterval,
		constLabels:     prometheus.Labels{},
		registry:        prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// RefreshInterval is how often system gauges should be refreshed.
func (m *Manager) RefreshInterval() time.Duration {
	return m.refreshInterval
}

// Enabled reports whether recording is on.
func (m *Manager) Enabled() bool {
	return m.enabled
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.constLabels,
	}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.calculations = auto.NewCounterVec(
		m.counterOpts("calculations_total", "Calculator runs by calculator and outcome"),
		[]string{"calculator", "outcome"},
	)
	m.calculationLatency = auto.NewHistogramVec(
		m.histogramOpts("calculation_latency_milliseconds", "Calculator run latency in milliseconds", m.latencyBuckets),
		[]string{"calculator"},
	)

	m.quizSessionsActive = auto.NewGauge(m.gaugeOpts("quiz_sessions_active", "Live quiz sessions"))
	m.quizSessionsCreated = auto.NewCounter(m.counterOpts("quiz_sessions_created_total", "Quiz sessions started"))
	m.quizSessionsSubmitted = auto.NewCounter(m.counterOpts("quiz_sessions_submitted_total", "Quiz sessions that reached the results"))
	m.quizSessionsEvicted = auto.NewCounter(m.counterOpts("quiz_sessions_evicted_total", "Quiz sessions dropped to stay within capacity"))
	m.quizRecommendations = auto.NewCounterVec(
		m.counterOpts("quiz_recommendations_total", "Recommended trades"),
		[]string{"trade"},
	)

	m.handoffPending = auto.NewGauge(m.gaugeOpts("handoff_pending", "Quiz results waiting to be read"))
	m.handoffIssued = auto.NewCounter(m.counterOpts("handoff_issued_total", "Quiz result tokens issued"))
	m.handoffConsumed = auto.NewCounter(m.counterOpts("handoff_consumed_total", "Quiz result tokens read"))
	m.handoffMissed = auto.NewCounter(m.counterOpts("handoff_missed_total", "Unknown, expired or reused quiz result tokens"))

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.latencyBuckets),
		[]string{"endpoint", "method", "status_code"},
	)
	m.validationErrors = auto.NewCounterVec(
		m.counterOpts("validation_errors_total", "Request bodies rejected by schema"),
		[]string{"schema"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		m.counterOpts("errors_by_component_total", "Total number of errors by component"),
		[]string{"component", "error_type"},
	)
	m.errorRateByType = auto.NewCounterVec(
		m.counterOpts("errors_by_type_total", "Total number of errors by type"),
		[]string{"error_type", "severity"},
	)
	m.errorRateByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Total number of errors by endpoint"),
		[]string{"endpoint", "method", "error_type"},
	)
	m.errorLatency = auto.NewHistogramVec(
		m.histogramOpts("error_latency_milliseconds", "Latency of operations that resulted in errors", m.latencyBuckets),
		[]string{"component", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts(
		"system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
		[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	))
}

// Default returns the global manager.
func Default() *Manager {
	return globalManager
}

func on() bool {
	return globalManager.enabled
}

// Calculator Metrics Functions.

// RecordCalculation counts one calculator run.
func RecordCalculation(calculator, outcome string) {
	if on() {
		globalManager.calculations.WithLabelValues(calculator, outcome).Inc()
	}
}

// RecordCalculationLatency records calculator latency in milliseconds.
func RecordCalculationLatency(calculator string, latencyMs float64) {
	if on() {
		globalManager.calculationLatency.WithLabelValues(calculator).Observe(latencyMs)
	}
}

// Quiz Metrics Functions.

// UpdateQuizSessionsActive sets the number of live sessions.
func UpdateQuizSessionsActive(count int) {
	if on() {
		globalManager.quizSessionsActive.Set(float64(count))
	}
}

// RecordQuizSessionCreated increments the created sessions counter.
func RecordQuizSessionCreated() {
	if on() {
		globalManager.quizSessionsCreated.Inc()
	}
}

// RecordQuizSessionSubmitted increments the submitted sessions counter.
func RecordQuizSessionSubmitted() {
	if on() {
		globalManager.quizSessionsSubmitted.Inc()
	}
}

// RecordQuizSessionsEvicted adds n evicted sessions.
func RecordQuizSessionsEvicted(n int) {
	if on() && n > 0 {
		globalManager.quizSessionsEvicted.Add(float64(n))
	}
}

// RecordQuizRecommendation counts a recommended trade.
func RecordQuizRecommendation(trade string) {
	if on() {
		globalManager.quizRecommendations.WithLabelValues(trade).Inc()
	}
}

// Handoff Metrics Functions.

// UpdateHandoffPending sets the number of unread quiz results.
func UpdateHandoffPending(count int) {
	if on() {
		globalManager.handoffPending.Set(float64(count))
	}
}

// RecordHandoffIssued increments the issued token counter.
func RecordHandoffIssued() {
	if on() {
		globalManager.handoffIssued.Inc()
	}
}

// RecordHandoffConsumed increments the consumed token counter.
func RecordHandoffConsumed() {
	if on() {
		globalManager.handoffConsumed.Inc()
	}
}

// RecordHandoffMissed increments the missed token counter.
func RecordHandoffMissed() {
	if on() {
		globalManager.handoffMissed.Inc()
	}
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if on() {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if on() {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
	}
}

// RecordValidationError counts a request body rejected by schema.
func RecordValidationError(schema string) {
	if on() {
		globalManager.validationErrors.WithLabelValues(schema).Inc()
	}
}

// Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	if on() {
		globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
	}
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	if on() {
		globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
	}
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if on() {
		globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	if on() {
		globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
	}
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	if on() {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	if on() {
		globalManager.systemGoroutineCount.Set(float64(count))
	}
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	if on() {
		globalManager.systemGCPauseTime.Observe(pauseMs)
	}
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
