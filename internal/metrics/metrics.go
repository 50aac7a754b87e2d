// Package metrics exposes Prometheus instrumentation for the API server.
// A private registry keeps the default global registry (and its Go
// runtime collectors from other libraries) out of the picture.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles every metric the server records.
type Collector struct {
	reg *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec // method, route, status
	RequestDuration prometheus.Histogram

	AssistCalls *prometheus.CounterVec // kind: estimate|generate, outcome: ok|unavailable
}

// NewCollector builds and registers all metrics on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wanderplan_http_requests_total",
			Help: "Total HTTP requests by method, route pattern, and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wanderplan_http_request_duration_seconds",
			Help:    "HTTP request handling duration.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		}),
		AssistCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wanderplan_assist_calls_total",
			Help: "Assistant calls by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}

	reg.MustRegister(c.RequestsTotal, c.RequestDuration, c.AssistCalls)
	return c
}

// Handler returns the /metrics endpoint handler for this registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
