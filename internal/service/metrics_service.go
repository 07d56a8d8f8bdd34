package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/courtside-sg/courtside-api/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation and provides
// lightweight snapshots for API consumption.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	searchDuration  prometheus.Observer
	searchResults   prometheus.Histogram
	searchTotal     *prometheus.CounterVec
	cacheLatency    prometheus.Observer
	cacheHitRatio   prometheus.Gauge
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter

	cacheHitCount       uint64
	cacheMissCount      uint64
	requestCount        uint64
	searchCount         uint64
	emptySearchCount    uint64
	supersededCount     uint64
	searchDurationTotal uint64
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	searchDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "search_duration_seconds",
		Help:    "Duration of search evaluations",
		Buckets: prometheus.DefBuckets,
	})

	searchResults := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "search_result_count",
		Help:    "Number of (instructor, slot) pairs per search",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
	})

	searchTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "searches_total",
		Help: "Total searches by outcome",
	}, []string{"outcome"})

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_latency_seconds",
		Help:    "Latency for cache operations",
		Buckets: prometheus.DefBuckets,
	})

	cacheHitRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cache_hit_ratio",
		Help: "Ratio of cache hits to total cache lookups",
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, searchDuration, searchResults, searchTotal, cacheLatency, cacheHitRatio, cacheHits, cacheMisses, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		searchDuration:  searchDuration,
		searchResults:   searchResults,
		searchTotal:     searchTotal,
		cacheLatency:    cacheLatency,
		cacheHitRatio:   cacheHitRatio,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
}

// ObserveSearch records one completed search evaluation.
func (m *MetricsService) ObserveSearch(resultCount int, duration time.Duration) {
	if m == nil {
		return
	}
	m.searchDuration.Observe(duration.Seconds())
	m.searchResults.Observe(float64(resultCount))
	outcome := "ok"
	if resultCount == 0 {
		outcome = "empty"
		atomic.AddUint64(&m.emptySearchCount, 1)
	}
	m.searchTotal.WithLabelValues(outcome).Inc()
	atomic.AddUint64(&m.searchCount, 1)
	atomic.AddUint64(&m.searchDurationTotal, uint64(duration.Nanoseconds()))
}

// ObserveSupersededSearch records a computation cancelled by a newer request.
func (m *MetricsService) ObserveSupersededSearch() {
	if m == nil {
		return
	}
	m.searchTotal.WithLabelValues("superseded").Inc()
	atomic.AddUint64(&m.supersededCount, 1)
}

// RecordCacheOperation records cache hit/miss metrics and updates hit ratio.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	if m.cacheLatency != nil {
		m.cacheLatency.Observe(duration.Seconds())
	}
	if hit {
		m.cacheHits.Inc()
		atomic.AddUint64(&m.cacheHitCount, 1)
	} else {
		m.cacheMisses.Inc()
		atomic.AddUint64(&m.cacheMissCount, 1)
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	misses := atomic.LoadUint64(&m.cacheMissCount)
	total := hits + misses
	if total > 0 {
		m.cacheHitRatio.Set(float64(hits) / float64(total))
	}
}

// Snapshot returns aggregated metrics suitable for diagnostics.
func (m *MetricsService) Snapshot() models.SystemMetrics {
	if m == nil {
		return models.SystemMetrics{}
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	misses := atomic.LoadUint64(&m.cacheMissCount)
	searches := atomic.LoadUint64(&m.searchCount)
	searchDuration := atomic.LoadUint64(&m.searchDurationTotal)

	var cacheRatio float64
	if total := hits + misses; total > 0 {
		cacheRatio = float64(hits) / float64(total)
	}

	var avgSearchMs float64
	if searches > 0 {
		avgSearchMs = float64(searchDuration) / float64(searches) / float64(time.Millisecond)
	}

	return models.SystemMetrics{
		CacheHitRatio:           cacheRatio,
		CacheHits:               hits,
		CacheMisses:             misses,
		RequestsTotal:           atomic.LoadUint64(&m.requestCount),
		SearchesTotal:           searches,
		EmptySearchesTotal:      atomic.LoadUint64(&m.emptySearchCount),
		SupersededTotal:         atomic.LoadUint64(&m.supersededCount),
		AverageSearchDurationMs: avgSearchMs,
		Goroutines:              runtime.NumGoroutine(),
		GeneratedAt:             time.Now().UTC(),
	}
}
