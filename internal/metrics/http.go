package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

func (m *Metrics) registerHTTP(reg prometheus.Registerer) {
	labels := []string{"method", "path", "status"}

	m.httpLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, labels)
	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served.",
	}, labels)
	m.httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "HTTP requests currently being handled.",
	})

	reg.MustRegister(m.httpLatency, m.httpRequests, m.httpInFlight)
}

// Middleware records count, latency and in-flight gauge per route. The
// metrics and health endpoints are served but not measured; scrapes and
// probes would otherwise dominate the series.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if skipInstrumentation(path) {
				return next(c)
			}

			m.httpInFlight.Inc()
			defer m.httpInFlight.Dec()
			start := time.Now()

			err := next(c)

			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)
			m.httpRequests.WithLabelValues(method, path, status).Inc()
			m.httpLatency.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

func skipInstrumentation(path string) bool {
	return path == "/metrics" || strings.HasPrefix(path, "/health/")
}
