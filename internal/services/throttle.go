package services

import (
	"log/slog"
	"sync"
	"time"
)

// ThrottleConfig holds the sliding-window limits for login attempts.
type ThrottleConfig struct {
	MaxAttempts int
	Window      time.Duration
}

// LoginThrottle tracks failed login attempts per client IP in a sliding
// window. The check runs before any credential work so a throttled client
// never costs a database read or a hash comparison. State is held in
// process memory; each IP's window is pruned and re-evaluated under that
// IP's own lock, so unrelated clients never contend.
type LoginThrottle struct {
	attempts sync.Map // ip -> *attemptWindow
	config   ThrottleConfig
	logger   *slog.Logger
	now      func() time.Time
}

type attemptWindow struct {
	mu       sync.Mutex
	failures []time.Time
}

func NewLoginThrottle(config ThrottleConfig, logger *slog.Logger) *LoginThrottle {
	return &LoginThrottle{
		config: config,
		logger: logger,
		now:    time.Now,
	}
}

// Allow reports whether a login attempt from ip may proceed. Failures
// older than the window no longer count.
func (t *LoginThrottle) Allow(ip string) bool {
	value, ok := t.attempts.Load(ip)
	if !ok {
		return true
	}

	window := value.(*attemptWindow)
	window.mu.Lock()
	defer window.mu.Unlock()

	window.failures = t.prune(window.failures)
	if len(window.failures) >= t.config.MaxAttempts {
		t.logger.Warn("login throttled",
			slog.String("ip_address", ip),
			slog.Int("recent_failures", len(window.failures)),
		)
		return false
	}
	return true
}

// RecordFailure notes a failed login from ip.
func (t *LoginThrottle) RecordFailure(ip string) {
	value, _ := t.attempts.LoadOrStore(ip, &attemptWindow{})
	window := value.(*attemptWindow)

	window.mu.Lock()
	defer window.mu.Unlock()

	window.failures = append(t.prune(window.failures), t.now())
}

// RecordSuccess clears the failure history for ip. A legitimate user who
// finally gets their password right starts from a clean slate.
func (t *LoginThrottle) RecordSuccess(ip string) {
	t.attempts.Delete(ip)
}

func (t *LoginThrottle) prune(failures []time.Time) []time.Time {
	cutoff := t.now().Add(-t.config.Window)
	kept := failures[:0]
	for _, ts := range failures {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	return kept
}
