package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

const providersCacheKey = "api:providers"

func (s *Server) registerAPIRoutes() {
	s.echo.GET("/api/providers", s.handleListProviders)
	s.echo.GET("/api/config", s.handleConfigSummary)
}

// handleListProviders lists every known AI provider in redacted form. The
// payload is cached on the short TTL tier when caching is enabled.
func (s *Server) handleListProviders(c echo.Context) error {
	if s.respCache != nil {
		if body, ok := s.respCache.Get(providersCacheKey); ok {
			if err := c.JSONBlob(http.StatusOK, body); err != nil {
				return fmt.Errorf("failed to write cached providers response: %w", err)
			}
			return nil
		}
	}

	body, err := json.Marshal(map[string]any{"providers": s.providers.Describe()})
	if err != nil {
		return fmt.Errorf("failed to marshal providers response: %w", err)
	}

	if s.respCache != nil {
		s.respCache.Set(providersCacheKey, body)
	}

	if err := c.JSONBlob(http.StatusOK, body); err != nil {
		return fmt.Errorf("failed to write providers response: %w", err)
	}
	return nil
}

// handleConfigSummary exposes a redacted view of the running configuration
// for diagnostics. Secrets and API keys are never included.
func (s *Server) handleConfigSummary(c echo.Context) error {
	cfg := s.cfg
	response := map[string]any{
		"environment": cfg.Server.Environment,
		"cors": map[string]any{
			"allowed_origins": cfg.CORS.AllowedOrigins,
		},
		"rate_limit": map[string]any{
			"window_ms":       cfg.RateLimit.Window.Milliseconds(),
			"max_requests":    cfg.RateLimit.MaxRequests,
			"skip_successful": cfg.RateLimit.SkipSuccessful,
			"skip_failed":     cfg.RateLimit.SkipFailed,
		},
		"features": map[string]bool{
			"rate_limiting": cfg.Features.RateLimiting,
			"logging":       cfg.Features.Logging,
			"cors":          cfg.Features.CORS,
			"compression":   cfg.Features.Compression,
			"caching":       cfg.Features.Caching,
		},
		"health_check_interval_ms": cfg.HealthCheck.Interval.Milliseconds(),
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write config summary: %w", err)
	}
	return nil
}
