// Package metrics provides Prometheus metrics for the OSRS companion MCP server.
// It tracks tool call counts, latencies, cache performance, and upstream API health.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "osrs_companion"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// CacheHits counts cache hits by cache name
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cache_hits_total",
		Help:      "Total cache hit count by cache",
	}, []string{"cache"})

	// CacheMisses counts cache misses by cache name
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cache_misses_total",
		Help:      "Total cache miss count by cache",
	}, []string{"cache"})

	// CacheSize tracks current cache entry count by cache name
	CacheSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "cache_entries",
		Help:      "Current number of cache entries by cache",
	}, []string{"cache"})

	// UpstreamRequestsTotal counts upstream API requests by source, action and status
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "upstream_requests_total",
		Help:      "Total upstream API requests by source, action and status",
	}, []string{"source", "action", "status"})

	// UpstreamLatency measures upstream API call latency by source and action
	UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "upstream_latency_seconds",
		Help:      "Upstream API call latency by source and action",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "action"})

	// SyncDocumentReads counts player sync document reads by outcome
	SyncDocumentReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "sync_document_reads_total",
		Help:      "Player sync document reads by outcome (ok, missing)",
	}, []string{"outcome"})

	// PanicsRecovered counts recovered panics in tool handlers
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordUpstream records an upstream API call
func RecordUpstream(source, action string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	UpstreamRequestsTotal.WithLabelValues(source, action, status).Inc()
	UpstreamLatency.WithLabelValues(source, action).Observe(duration)
}

// RecordCacheAccess records a cache hit or miss
func RecordCacheAccess(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
	} else {
		CacheMisses.WithLabelValues(cache).Inc()
	}
}

// RecordSyncRead records a player sync document read outcome
func RecordSyncRead(ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "missing"
	}
	SyncDocumentReads.WithLabelValues(outcome).Inc()
}

// SetCacheSize updates the entry count gauge for a cache
func SetCacheSize(cache string, size int64) {
	CacheSize.WithLabelValues(cache).Set(float64(size))
}
