package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveOnce(t *testing.T, m *Metrics, path string) {
	t.Helper()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET(path, func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_CountsInstrumentedRoutes(t *testing.T) {
	m := New()

	serveOnce(t, m, "/api/providers")

	got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/providers", "200"))
	assert.Equal(t, 1.0, got)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))
}

func TestMiddleware_SkipsMetricsAndHealthEndpoints(t *testing.T) {
	m := New()

	serveOnce(t, m, "/health/live")
	serveOnce(t, m, "/metrics")

	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/health/live", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/metrics", "200")))
}

func TestHandler_ExposesNamespacedSeries(t *testing.T) {
	m := New()

	serveOnce(t, m, "/api/config")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "promptpulse_http_requests_total")
	assert.Contains(t, body, `path="/api/config"`)
}
