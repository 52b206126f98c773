package server

import (
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"promptpulse/internal/metrics"
)

func (s *Server) registerRoutes(m *metrics.Metrics, clock clockwork.Clock) {
	if s.cfg.Features.Logging {
		s.echo.Use(requestLoggerMiddleware())
	}
	s.echo.Use(correlationMiddleware)
	s.echo.Use(middleware.Recover())

	if m != nil {
		s.echo.Use(m.Middleware())
		s.echo.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	// echo treats an empty AllowOrigins as "*"; an empty origin list in the
	// snapshot means no cross-origin access, so skip the middleware entirely.
	if s.cfg.Features.CORS && len(s.cfg.CORS.AllowedOrigins) > 0 {
		s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.cfg.CORS.AllowedOrigins,
		}))
	}

	if s.cfg.Features.Compression {
		s.echo.Use(middleware.Gzip())
	}

	if s.cfg.Features.RateLimiting {
		s.echo.Use(newFixedWindowLimiter(s.cfg.RateLimit, clock).Middleware())
	}

	s.registerHealthRoutes()
	s.registerAPIRoutes()

	if s.cfg.Frontend.ServeStatic {
		s.echo.Static("/", staticRoot)
	}
}
