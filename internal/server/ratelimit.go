package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"

	"promptpulse/internal/platform/config"
)

// maxTrackedClients caps the window map; stale windows are swept
// opportunistically when the cap is reached.
const maxTrackedClients = 10000

// fixedWindowLimiter enforces the configured request budget per client IP
// over a fixed window. Requests can be refunded after the fact so that
// successful or failed ones do not count against the budget, matching the
// skip-successful / skip-failed configuration flags. A token bucket cannot
// express the refund, hence the hand-rolled counter store.
type fixedWindowLimiter struct {
	cfg   config.RateLimit
	clock clockwork.Clock

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count    int
	resetsAt time.Time
}

func newFixedWindowLimiter(cfg config.RateLimit, clock clockwork.Clock) *fixedWindowLimiter {
	return &fixedWindowLimiter{
		cfg:     cfg,
		clock:   clock,
		windows: make(map[string]*window),
	}
}

// allow consumes one request from the client's current window, starting a
// fresh window when the previous one has elapsed.
func (l *fixedWindowLimiter) allow(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	w, ok := l.windows[id]
	if !ok || now.After(w.resetsAt) {
		if len(l.windows) >= maxTrackedClients {
			l.sweepLocked(now)
		}
		w = &window{resetsAt: now.Add(l.cfg.Window)}
		l.windows[id] = w
	}

	if w.count >= l.cfg.MaxRequests {
		return false
	}
	w.count++
	return true
}

// refund returns one request to the client's current window.
func (l *fixedWindowLimiter) refund(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w, ok := l.windows[id]; ok && w.count > 0 {
		w.count--
	}
}

func (l *fixedWindowLimiter) sweepLocked(now time.Time) {
	for id, w := range l.windows {
		if now.After(w.resetsAt) {
			delete(l.windows, id)
		}
	}
}

// Middleware rejects over-budget requests with 429 and applies the refund
// flags once the handler outcome is known.
func (l *fixedWindowLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.RealIP()
			if !l.allow(id) {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "rate limit exceeded",
				})
			}

			err := next(c)

			failed := err != nil || c.Response().Status >= http.StatusBadRequest
			if (l.cfg.SkipSuccessful && !failed) || (l.cfg.SkipFailed && failed) {
				l.refund(id)
			}
			return err
		}
	}
}
