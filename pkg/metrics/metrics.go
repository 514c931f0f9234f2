// Package metrics expone los colectores Prometheus de la API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los colectores HTTP y de negocio en un registry propio.
type Metrics struct {
	registry *prometheus.Registry

	inFlight   prometheus.Gauge
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	ratings    *prometheus.CounterVec
	moderation *prometheus.CounterVec
}

// New registra los colectores bajo el namespace indicado.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
		ratings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ratings",
			Name:      "submissions_total",
			Help:      "Rating submissions by outcome (created or updated).",
		}, []string{"outcome"}),
		moderation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ratings",
			Name:      "moderated_total",
			Help:      "Ratings affected by admin moderation operations.",
		}, []string{"operation"}),
	}
	m.registry.MustRegister(
		m.inFlight, m.requests, m.duration, m.ratings, m.moderation,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler expone el registry en formato de texto Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry devuelve el registry subyacente.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// RequestStarted incrementa el gauge de peticiones en curso.
func (m *Metrics) RequestStarted() { m.inFlight.Inc() }

// RequestFinished registra una petición terminada.
func (m *Metrics) RequestFinished(method, route string, status int, elapsed time.Duration) {
	m.inFlight.Dec()
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RatingSubmitted cuenta un upsert de calificación.
func (m *Metrics) RatingSubmitted(created bool) {
	outcome := "updated"
	if created {
		outcome = "created"
	}
	m.ratings.WithLabelValues(outcome).Inc()
}

// RatingsModerated cuenta filas afectadas por approve/reject/delete.
func (m *Metrics) RatingsModerated(operation string, n int64) {
	m.moderation.WithLabelValues(operation).Add(float64(n))
}
