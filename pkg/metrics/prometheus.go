// Package metrics provides Prometheus metrics for the leaderboard mirror.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Sync loop
	syncCycles        *prometheus.CounterVec
	regionFetchErrors *prometheus.CounterVec
	lastSyncUnix      prometheus.Gauge
	nextSyncUnix      prometheus.Gauge
	regionRows        *prometheus.GaugeVec

	// Query layer
	queryLatency prometheus.Histogram

	// HTTP surface
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Sync cycle outcomes recorded by RecordSyncCycle.
const (
	CycleSuccess = "success"
	CycleEmpty   = "empty"
	CycleError   = "error"
)

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "leadboard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
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

	m.syncCycles = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "sync",
		Name:      "cycles_total",
		Help:      "Sync cycles by outcome (success, empty, error)",
	}, []string{"result"})

	m.regionFetchErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "sync",
		Name:      "region_fetch_errors_total",
		Help:      "Failed per-region fetches",
	}, []string{"region"})

	m.lastSyncUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "sync",
		Name:      "last_posted_timestamp_seconds",
		Help:      "time_posted of the snapshot currently persisted",
	})

	m.nextSyncUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "sync",
		Name:      "next_scheduled_timestamp_seconds",
		Help:      "next_scheduled_post_time advertised by the server",
	})

	m.regionRows = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "store",
		Name:      "region_rows",
		Help:      "Rows persisted per region after the last replace",
	}, []string{"region"})

	m.queryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "store",
		Name:      "query_latency_milliseconds",
		Help:      "Histogram of player query latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
}

// RecordSyncCycle counts one finished cycle by outcome.
func RecordSyncCycle(result string) {
	if globalManager.enabled {
		globalManager.syncCycles.WithLabelValues(result).Inc()
	}
}

// RecordRegionFetchError counts one failed per-region fetch.
func RecordRegionFetchError(region string) {
	if globalManager.enabled {
		globalManager.regionFetchErrors.WithLabelValues(region).Inc()
	}
}

// UpdateSyncTimestamps publishes the persisted schedule timestamps.
func UpdateSyncTimestamps(timePosted, nextScheduled int64) {
	if globalManager.enabled {
		globalManager.lastSyncUnix.Set(float64(timePosted))
		globalManager.nextSyncUnix.Set(float64(nextScheduled))
	}
}

// UpdateRegionRows publishes the row count of a freshly replaced region.
func UpdateRegionRows(region string, count int) {
	if globalManager.enabled {
		globalManager.regionRows.WithLabelValues(region).Set(float64(count))
	}
}

// RecordQueryLatency observes one player query duration.
func RecordQueryLatency(latencyMs float64) {
	if globalManager.enabled {
		globalManager.queryLatency.Observe(latencyMs)
	}
}

// RecordHTTPRequest counts one handled request.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration observes one request duration.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
	}
}

// GetRegistry returns the custom registry for the /metrics handler.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
