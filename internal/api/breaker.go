package api

import (
	"errors"
	"sync"
	"time"
)

// ── Circuit breaker ──────────────────────────────────────────────────────────
// Classic Closed → Open → Half-Open breaker guarding the backend connection.
// When the backend is unreachable the client fast-fails instead of stacking
// timeouts. This is not a retry mechanism: nothing is ever replayed.

// BreakerState represents the current breaker state.
type BreakerState int

const (
	BreakerClosed   BreakerState = iota // normal — requests flow
	BreakerOpen                         // tripped — fast-fail all requests
	BreakerHalfOpen                     // probing — one request allowed
)

// String returns a human-readable state name (for logs).
func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// ErrBackendIndisponible is returned while the breaker is open.
var ErrBackendIndisponible = errors.New("le serveur est momentanément indisponible")

// BreakerConfig holds tunable parameters.
type BreakerConfig struct {
	FailureThreshold int           // consecutive failures to trip open
	SuccessThreshold int           // consecutive successes in half-open to close
	OpenTimeout      time.Duration // how long to stay open before probing
}

// DefaultBreakerConfig returns sensible defaults for the backend connection.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		OpenTimeout:      30 * time.Second,
	}
}

// Breaker implements the pattern with thread-safe state transitions.
type Breaker struct {
	mu               sync.Mutex
	state            BreakerState
	failureCount     int
	successCount     int
	lastFailureTime  time.Time
	failureThreshold int
	successThreshold int
	openTimeout      time.Duration
}

// NewBreaker creates a breaker in Closed state.
func NewBreaker(cfg BreakerConfig) *Breaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = 2
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	return &Breaker{
		state:            BreakerClosed,
		failureThreshold: cfg.FailureThreshold,
		successThreshold: cfg.SuccessThreshold,
		openTimeout:      cfg.OpenTimeout,
	}
}

// State returns the current breaker state (safe for concurrent reads).
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	// Auto-transition open → half-open once the timeout has elapsed
	if b.state == BreakerOpen && time.Since(b.lastFailureTime) >= b.openTimeout {
		b.state = BreakerHalfOpen
		b.successCount = 0
	}
	return b.state
}

// Execute runs fn through the breaker. Only transport-level failures should
// be reported as errors by fn; application-level 4xx responses must count as
// successes or a misbehaving form could trip the breaker.
func (b *Breaker) Execute(fn func() error) error {
	if b.State() == BreakerOpen {
		return ErrBackendIndisponible
	}

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.onFailure()
		return err
	}
	b.onSuccess()
	return nil
}

// onFailure records a failure (must be called under lock).
func (b *Breaker) onFailure() {
	b.failureCount++
	b.lastFailureTime = time.Now()

	switch b.state {
	case BreakerClosed:
		if b.failureCount >= b.failureThreshold {
			b.state = BreakerOpen
			b.successCount = 0
		}
	case BreakerHalfOpen:
		// Probe failed — back to open
		b.state = BreakerOpen
		b.failureCount = 0
	}
}

// onSuccess records a success (must be called under lock).
func (b *Breaker) onSuccess() {
	switch b.state {
	case BreakerClosed:
		b.failureCount = 0
	case BreakerHalfOpen:
		b.successCount++
		if b.successCount >= b.successThreshold {
			b.state = BreakerClosed
			b.failureCount = 0
			b.successCount = 0
		}
	}
}
