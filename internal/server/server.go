package server

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"

	"promptpulse/internal/ai"
	"promptpulse/internal/cache"
	"promptpulse/internal/metrics"
	"promptpulse/internal/platform/config"
)

// staticRoot is where the built frontend assets live when SERVE_STATIC is on.
const staticRoot = "web/dist"

type Server struct {
	echo         *echo.Echo
	cfg          config.Snapshot
	providers    *ai.Registry
	respCache    *cache.Cache[string, []byte]
	stopEviction func()
	startTime    time.Time
}

// New builds the server from the configuration snapshot. The snapshot is
// copied in by value and never modified.
func New(cfg config.Snapshot, providers *ai.Registry, m *metrics.Metrics, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:      e,
		cfg:       cfg,
		providers: providers,
		startTime: clock.Now(),
	}

	if cfg.Features.Caching {
		srv.respCache = cache.New[string, []byte](cfg.Cache.TTLShort, cfg.Cache.MaxEntries, clock)
		srv.stopEviction = srv.respCache.StartEvictionTimer(time.Minute)
	}

	srv.registerRoutes(m, clock)

	return srv
}

func (s *Server) Start() error {
	if err := s.echo.Start(fmt.Sprintf(":%d", s.cfg.Server.Port)); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.stopEviction != nil {
		s.stopEviction()
	}
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
