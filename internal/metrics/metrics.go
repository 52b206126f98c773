// Package metrics registers and serves Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "promptpulse"

// Metrics owns the registry and every instrument built on it.
type Metrics struct {
	Registry *prometheus.Registry

	httpLatency  *prometheus.HistogramVec
	httpRequests *prometheus.CounterVec
	httpInFlight prometheus.Gauge
}

// New creates a fresh registry with runtime collectors and the HTTP
// instruments registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{Registry: reg}
	m.registerHTTP(reg)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
