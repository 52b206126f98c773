// Package app holds background process-level loops.
package app

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/jonboulle/clockwork"
)

// Heartbeat periodically logs that the process is alive, with basic runtime
// figures. The interval comes from the health-check configuration namespace.
type Heartbeat struct {
	interval time.Duration
	clock    clockwork.Clock
	started  time.Time
}

// NewHeartbeat creates a heartbeat ticking at the given interval.
func NewHeartbeat(interval time.Duration, clock clockwork.Clock) *Heartbeat {
	return &Heartbeat{
		interval: interval,
		clock:    clock,
		started:  clock.Now(),
	}
}

// Run starts the heartbeat loop. It blocks until ctx is cancelled.
func (h *Heartbeat) Run(ctx context.Context) {
	ticker := h.clock.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			slog.Info("Health check",
				"uptime", h.clock.Since(h.started).Round(time.Second).String(),
				"goroutines", runtime.NumGoroutine(),
			)
		}
	}
}
