package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Tracks the number of HTTP requests by path and status.",
	}, []string{"path", "status"})

	httpRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Tracks the latencies for HTTP requests.",
		Buckets: prometheus.DefBuckets,
	})

	upstreamFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_fetch_duration_seconds",
		Help:    "Tracks the latencies of Mastodon API fetches.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	upstreamFetchErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_fetch_errors_total",
		Help: "Tracks failed Mastodon API fetches by endpoint.",
	}, []string{"endpoint"})

	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Tracks thread/instance cache hits.",
	})

	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Tracks thread/instance cache misses.",
	})

	streamEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stream_events_total",
		Help: "Tracks streaming API events received by host.",
	}, []string{"host"})
)

// GetRegistry builds the Prometheus registry served at /metrics.
func GetRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequestsTotal,
		httpRequestDuration,
		upstreamFetchDuration,
		upstreamFetchErrorsTotal,
		cacheHitsTotal,
		cacheMissesTotal,
		streamEventsTotal,
	)
	return registry
}

// MetricsHandler serves the registry in the Prometheus text format.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// ObserveRequest records one served HTTP request.
func ObserveRequest(path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
	httpRequestDuration.Observe(duration.Seconds())
}

// ObserveUpstreamFetch records one Mastodon API fetch.
func ObserveUpstreamFetch(endpoint string, duration time.Duration, err error) {
	upstreamFetchDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
	if err != nil {
		upstreamFetchErrorsTotal.WithLabelValues(endpoint).Inc()
	}
}

// IncrementCacheHit increments the cache hit counter
func IncrementCacheHit() {
	cacheHitsTotal.Inc()
}

// IncrementCacheMiss increments the cache miss counter
func IncrementCacheMiss() {
	cacheMissesTotal.Inc()
}

// IncrementStreamEvent records one streaming event from a host.
func IncrementStreamEvent(host string) {
	streamEventsTotal.WithLabelValues(host).Inc()
}
