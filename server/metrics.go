package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// serverMetrics uses a private registry so multiple Server instances, as in
// tests, never collide on registration.
type serverMetrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	noData   prometheus.Counter
}

func newServerMetrics() *serverMetrics {
	m := &serverMetrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "stockviewer",
				Name:      "http_requests_total",
				Help:      "Requests served by path.",
			},
			[]string{"path"},
		),
		noData: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "stockviewer",
				Name:      "no_data_total",
				Help:      "Chart requests that resolved to the no-data state.",
			},
		),
	}
	m.registry.MustRegister(m.requests, m.noData)
	return m
}
