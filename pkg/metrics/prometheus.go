package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Manager manages all Prometheus metrics for the draft board service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// View build metrics
	viewsBuilt         prometheus.Gauge
	playersWithStats   prometheus.Gauge
	unrankedPlayers    prometheus.Gauge
	viewBuildDuration  prometheus.Histogram
	viewBuildsTotal    prometheus.Counter
	snapshotLoadErrors prometheus.Counter

	// Filter metrics
	filterRequests *prometheus.CounterVec
	filterResults  prometheus.Histogram
	filterLatency  prometheus.Histogram

	// Annotation metrics
	reportsSubmitted  prometheus.Counter
	reportsRejected   prometheus.Counter
	bookmarkToggles   *prometheus.CounterVec
	annotationErrors  *prometheus.CounterVec
	bookmarkedPlayers prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec
	errorsByType        *prometheus.CounterVec

	// System metrics
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

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "draftboard",
		subsystem:        "board",
		histogramBuckets: LatencyBucketsMS,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, Buckets: buckets, ConstLabels: m.constLabels}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.viewsBuilt = auto.NewGauge(m.gaugeOpts("views_built", "Number of player views in the materialized board"))
	m.playersWithStats = auto.NewGauge(m.gaugeOpts("players_with_stats", "Number of players with at least one game log"))
	m.unrankedPlayers = auto.NewGauge(m.gaugeOpts("unranked_players", "Number of players without any numeric scout rank"))
	m.viewBuildDuration = auto.NewHistogram(m.histogramOpts("view_build_duration_milliseconds", "Time spent building player views", m.histogramBuckets))
	m.viewBuildsTotal = auto.NewCounter(m.counterOpts("view_builds_total", "Total number of view builds"))
	m.snapshotLoadErrors = auto.NewCounter(m.counterOpts("snapshot_load_errors_total", "Total number of failed snapshot loads"))

	m.filterRequests = auto.NewCounterVec(m.counterOpts("filter_requests_total", "Total number of filter requests by mode"), []string{"mode"})
	m.filterResults = auto.NewHistogram(m.histogramOpts("filter_result_size", "Number of players returned by a filter",
		[]float64{0, 1, 5, 10, 25, 50, 100, 250, 500}))
	m.filterLatency = auto.NewHistogram(m.histogramOpts("filter_latency_milliseconds", "Filter and sort latency in milliseconds", m.histogramBuckets))

	m.reportsSubmitted = auto.NewCounter(m.counterOpts("reports_submitted_total", "Total number of scouting reports stored"))
	m.reportsRejected = auto.NewCounter(m.counterOpts("reports_rejected_total", "Total number of scouting reports rejected by validation"))
	m.bookmarkToggles = auto.NewCounterVec(m.counterOpts("bookmark_toggles_total", "Total number of bookmark changes by new state"), []string{"state"})
	m.annotationErrors = auto.NewCounterVec(m.counterOpts("annotation_errors_total", "Total number of annotation store failures by operation"), []string{"operation"})
	m.bookmarkedPlayers = auto.NewGauge(m.gaugeOpts("bookmarked_players", "Number of players on the watchlist"))

	m.httpRequests = auto.NewCounterVec(m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"})
	m.errorsByEndpoint = auto.NewCounterVec(m.counterOpts("errors_by_endpoint_total", "Total number of errors by endpoint"),
		[]string{"endpoint", "method", "error_type"})
	m.errorsByType = auto.NewCounterVec(m.counterOpts("errors_by_type_total", "Total number of errors by type and severity"),
		[]string{"error_type", "severity"})

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts("system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
		[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}))
}

// RecordViewBuild records a completed build of the board.
func RecordViewBuild(views, withStats, unranked int, durationMs float64) {
	globalManager.viewsBuilt.Set(float64(views))
	globalManager.playersWithStats.Set(float64(withStats))
	globalManager.unrankedPlayers.Set(float64(unranked))
	globalManager.viewBuildDuration.Observe(durationMs)
	globalManager.viewBuildsTotal.Inc()
}

// RecordSnapshotLoadError increments the failed snapshot load counter.
func RecordSnapshotLoadError() {
	globalManager.snapshotLoadErrors.Inc()
}

// RecordFilter records one filter call.
func RecordFilter(mode string, results int, latencyMs float64) {
	globalManager.filterRequests.WithLabelValues(mode).Inc()
	globalManager.filterResults.Observe(float64(results))
	globalManager.filterLatency.Observe(latencyMs)
}

// RecordReportSubmitted increments the stored reports counter.
func RecordReportSubmitted() {
	globalManager.reportsSubmitted.Inc()
}

// RecordReportRejected increments the rejected reports counter.
func RecordReportRejected() {
	globalManager.reportsRejected.Inc()
}

// RecordBookmarkToggle records a bookmark change to state ("on" or "off").
func RecordBookmarkToggle(state string) {
	globalManager.bookmarkToggles.WithLabelValues(state).Inc()
}

// RecordAnnotationError records a failed annotation store operation.
func RecordAnnotationError(operation string) {
	globalManager.annotationErrors.WithLabelValues(operation).Inc()
}

// UpdateBookmarkedPlayers sets the watchlist size.
func UpdateBookmarkedPlayers(count int) {
	globalManager.bookmarkedPlayers.Set(float64(count))
}

// RecordHTTPRequest increments the HTTP requests counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByEndpoint records errors by endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorByType records errors by type and severity.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorsByType.WithLabelValues(errorType, severity).Inc()
}

// UpdateSystemMemoryUsage updates system memory usage.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount updates goroutine count.
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

// Gather collects the current metric families from the custom registry.
func Gather() ([]*dto.MetricFamily, error) {
	families, err := customRegistry.Gather()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGather, err)
	}
	return families, nil
}
