// Package obs holds the service's Prometheus instrumentation.
package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the service's Prometheus collectors. It implements
// usecase.Recorder for the pipeline-level counters.
type Metrics struct {
	SearchesTotal       prometheus.Counter
	IntegrityDropsTotal prometheus.Counter

	UpstreamErrors      *prometheus.CounterVec
	UpstreamLatency     *prometheus.HistogramVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec
	Registry            *prometheus.Registry
}

// NewMetrics creates the collectors and registers them on the given registry.
func NewMetrics(p *prometheus.Registry) *Metrics {
	m := &Metrics{
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flight_searches_total",
			Help: "Total number of flight offer searches",
		}),
		IntegrityDropsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flight_integrity_drops_total",
			Help: "Offers dropped because a consumed field was unusable",
		}),
		UpstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "upstream_errors_total",
			Help: "Errors returned by each upstream operation",
		}, []string{"op"},
		),
		UpstreamLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_latency_seconds",
				Help:    "Latency of upstream provider calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		Registry: p,
	}

	p.MustRegister(
		m.SearchesTotal,
		m.IntegrityDropsTotal,
		m.UpstreamErrors,
		m.UpstreamLatency,
		m.HTTPRequestDuration,
		m.HTTPRequestsTotal,
	)

	return m
}

// IncSearches implements usecase.Recorder.
func (m *Metrics) IncSearches() { m.SearchesTotal.Inc() }

// AddIntegrityDrops implements usecase.Recorder.
func (m *Metrics) AddIntegrityDrops(n int) { m.IntegrityDropsTotal.Add(float64(n)) }

func (m *Metrics) IncUpstreamError(op string) {
	m.UpstreamErrors.WithLabelValues(op).Inc()
}

func (m *Metrics) ObserveUpstreamLatency(op string, seconds float64) {
	m.UpstreamLatency.WithLabelValues(op).Observe(seconds)
}

func (m *Metrics) ObserveHTTPRequestDuration(method, path, status string, seconds float64) {
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

func (m *Metrics) IncHTTPRequestsTotal(method, path, status string) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
}

// Handler exposes the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
