package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"promptpulse/internal/ai"
	"promptpulse/internal/app"
	"promptpulse/internal/metrics"
	"promptpulse/internal/platform/config"
	"promptpulse/internal/platform/logging"
	"promptpulse/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := setupConfig()

	logging.Init(cfg.Server.LogLevel, cfg.Server.LogFormat)
	slog.Info("Application starting", "environment", cfg.Server.Environment, "port", cfg.Server.Port)

	if cfg.Server.Environment == config.Production && cfg.Server.SessionSecretIsFallback() {
		slog.Warn("SESSION_SECRET is not set, using the built-in development fallback")
	}

	clock := clockwork.NewRealClock()

	providers := ai.NewRegistry(cfg.AI)
	for _, p := range providers.Configured() {
		slog.Info("AI provider configured", "provider", p.Name, "model", p.Model)
	}
	if len(providers.Configured()) == 0 {
		slog.Warn("No AI provider configured, completion endpoints will be unavailable")
	}

	m := metrics.New()
	srv := server.New(cfg, providers, m, clock)

	ctx, cancel := context.WithCancel(context.Background())
	heartbeat := app.NewHeartbeat(cfg.HealthCheck.Interval, clock)
	go heartbeat.Run(ctx)

	done := runGracefulShutdown(srv, cancel)

	slog.Info("Server starting", "port", cfg.Server.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}

func setupConfig() config.Snapshot {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized. The error already lists every
		// violation, one per line, so all problems are fixable in one pass.
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func runGracefulShutdown(srv *server.Server, cancel context.CancelFunc) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		cancel()

		shutdownCtx, cancelTimeout := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelTimeout()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}
