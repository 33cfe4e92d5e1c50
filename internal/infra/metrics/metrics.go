// Package metrics provides Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catlog"

// Metrics bundles the Prometheus collectors of the service. Collectors are
// registered on a dedicated registry so the scrape output carries only our
// own series.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP performance
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Business counters
	catsRegistered prometheus.Counter
	eventsLogged   *prometheus.CounterVec
}

// New creates the metrics bundle with every collector registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	auto := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequests: auto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status_code"},
		),
		httpRequestDuration: auto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds by route and method",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		catsRegistered: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cats",
			Name:      "registered_total",
			Help:      "Total number of cats registered",
		}),
		eventsLogged: auto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "events",
				Name:      "logged_total",
				Help:      "Total number of toilet events logged by event type",
			},
			[]string{"event_type"},
		),
	}
}

// RecordHTTPRequest records one served request.
func (m *Metrics) RecordHTTPRequest(route, method, statusCode string, seconds float64) {
	m.httpRequests.WithLabelValues(route, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(seconds)
}

// RecordCatRegistered increments the registered cats counter.
func (m *Metrics) RecordCatRegistered() {
	m.catsRegistered.Inc()
}

// RecordEventLogged increments the logged events counter for eventType.
func (m *Metrics) RecordEventLogged(eventType string) {
	m.eventsLogged.WithLabelValues(eventType).Inc()
}

// Registry exposes the underlying registry for the scrape endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
