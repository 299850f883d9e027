// Package metrics owns the Prometheus registry and the service's collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "profilemap"

// Result label values
const (
	ResultOK          = "ok"
	ResultNotFound    = "not_found"
	ResultUnavailable = "unavailable"
	ResultError       = "error"
	ResultCacheHit    = "cache_hit"
)

// Metrics groups every collector registered by the service.
type Metrics struct {
	registry *prometheus.Registry

	geocodeRequests  *prometheus.CounterVec
	geocodeDuration  prometheus.Histogram
	profileMutations *prometheus.CounterVec
	viewSessions     prometheus.Gauge
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New creates a dedicated registry with Go and process collectors plus the service metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		geocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Geocoding lookups by result.",
		}, []string{"result"}),
		geocodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "geocode_duration_seconds",
			Help:      "Latency of geocoding lookups that reached the gateway.",
			Buckets:   prometheus.DefBuckets,
		}),
		profileMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_mutations_total",
			Help:      "Profile store mutations by operation and result.",
		}, []string{"op", "result"}),
		viewSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "view_sessions",
			Help:      "Open directory view sessions.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.geocodeRequests,
		m.geocodeDuration,
		m.profileMutations,
		m.viewSessions,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveGeocode records one lookup. elapsed is ignored for cache hits.
func (m *Metrics) ObserveGeocode(result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.geocodeRequests.WithLabelValues(result).Inc()
	if result != ResultCacheHit {
		m.geocodeDuration.Observe(elapsed.Seconds())
	}
}

// ObserveMutation records one store mutation attempt.
func (m *Metrics) ObserveMutation(op, result string) {
	if m == nil {
		return
	}
	m.profileMutations.WithLabelValues(op, result).Inc()
}

// SetViewSessions reports the current number of open view sessions.
func (m *Metrics) SetViewSessions(n int) {
	if m == nil {
		return
	}
	m.viewSessions.Set(float64(n))
}

// ObserveHTTP records one served request. route is the registered path pattern, not the raw URL.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
