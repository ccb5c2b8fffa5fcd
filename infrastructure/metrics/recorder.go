// ABOUTME: Prometheus metrics for the recipe finder service
// ABOUTME: Records HTTP traffic, cache lookups, remote calls, sessions and prefetch jobs

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"recipe-finder-api/core/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "recipe_finder"

// Recorder owns a registry and the collectors registered on it
type Recorder struct {
	registry *prometheus.Registry

	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge
	rateLimitRejects     prometheus.Counter

	cacheLookups     *prometheus.CounterVec
	upstreamCalls    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec

	sessionEvents *prometheus.CounterVec
	prefetchJobs  *prometheus.CounterVec
}

var _ interfaces.Metrics = (*Recorder)(nil)

// NewRecorder creates a recorder with its own registry, including Go runtime
// and process collectors
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Current number of HTTP requests being processed",
			},
		),
		rateLimitRejects: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limit_rejects_total",
				Help:      "Total number of requests rejected due to rate limiting",
			},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Recipe cache lookups by operation and result",
			},
			[]string{"operation", "result"},
		),
		upstreamCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_calls_total",
				Help:      "Calls to the recipe service by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		upstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_call_duration_seconds",
				Help:      "Recipe service call latency in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"operation"},
		),
		sessionEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "session_events_total",
				Help:      "Session lifecycle events",
			},
			[]string{"event"},
		),
		prefetchJobs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "prefetch_jobs_total",
				Help:      "Recipe details prefetch jobs by outcome",
			},
			[]string{"outcome"},
		),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequestsTotal,
		r.httpRequestDuration,
		r.httpRequestsInFlight,
		r.rateLimitRejects,
		r.cacheLookups,
		r.upstreamCalls,
		r.upstreamDuration,
		r.sessionEvents,
		r.prefetchJobs,
	)

	return r
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// CacheLookup records a cache hit or miss
func (r *Recorder) CacheLookup(operation string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(operation, result).Inc()
}

// UpstreamCall records one remote call
func (r *Recorder) UpstreamCall(operation string, outcome string, duration time.Duration) {
	r.upstreamCalls.WithLabelValues(operation, outcome).Inc()
	r.upstreamDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SessionEvent records a session lifecycle event
func (r *Recorder) SessionEvent(event string) {
	r.sessionEvents.WithLabelValues(event).Inc()
}

// PrefetchJob records a prefetch job outcome
func (r *Recorder) PrefetchJob(outcome string) {
	r.prefetchJobs.WithLabelValues(outcome).Inc()
}

// RequestStarted marks a request in flight and returns a func that finishes it
func (r *Recorder) RequestStarted() func(method, route string, status int) {
	start := time.Now()
	r.httpRequestsInFlight.Inc()
	return func(method, route string, status int) {
		r.httpRequestsInFlight.Dec()
		r.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		r.httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// RateLimitRejected counts a request refused by the rate limiter
func (r *Recorder) RateLimitRejected() {
	r.rateLimitRejects.Inc()
}
