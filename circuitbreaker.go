package goreefcore

import (
	"time"

	"go.uber.org/atomic"
)

type circuitBreakerState uint32

const (
	circuitBreakerStateClosed circuitBreakerState = iota
	circuitBreakerStateOpen
	circuitBreakerStateHalfOpen
)

type CircuitBreakerConfig struct {
	// Disabled turns the breaker into a pass-through which allows every
	// request and ignores outcome marks.
	Disabled bool

	// FailureThreshold is the number of consecutive failures after which the
	// breaker opens.  Zero selects a default of 8.
	FailureThreshold uint32

	// CooldownPeriod is how long an open breaker fast-fails requests before
	// allowing a canary through.  Zero selects a default of 5s.
	CooldownPeriod time.Duration
}

// circuitBreaker tracks consecutive request failures against a single
// endpoint and fast-fails dispatch while the endpoint is presumed down.
// All methods are safe for concurrent use.
type circuitBreaker struct {
	disabled         bool
	failureThreshold uint32
	cooldownPeriod   time.Duration

	state       atomic.Uint32
	failures    atomic.Uint32
	openedAt    atomic.Int64
	canaryTaken atomic.Bool
}

func newCircuitBreaker(config CircuitBreakerConfig) *circuitBreaker {
	failureThreshold := config.FailureThreshold
	if failureThreshold == 0 {
		failureThreshold = 8
	}

	cooldownPeriod := config.CooldownPeriod
	if cooldownPeriod == 0 {
		cooldownPeriod = 5 * time.Second
	}

	return &circuitBreaker{
		disabled:         config.Disabled,
		failureThreshold: failureThreshold,
		cooldownPeriod:   cooldownPeriod,
	}
}

// AllowsRequest reports whether a request may be dispatched right now.  When
// the cool-down of an open breaker has elapsed, the first caller transitions
// the breaker to half-open and becomes the canary; concurrent callers keep
// getting fast-failed until the canary resolves.
func (cb *circuitBreaker) AllowsRequest() bool {
	if cb.disabled {
		return true
	}

	switch circuitBreakerState(cb.state.Load()) {
	case circuitBreakerStateClosed:
		return true
	case circuitBreakerStateOpen:
		openedAt := time.Unix(0, cb.openedAt.Load())
		if time.Since(openedAt) < cb.cooldownPeriod {
			return false
		}

		if !cb.state.CompareAndSwap(
			uint32(circuitBreakerStateOpen), uint32(circuitBreakerStateHalfOpen)) {
			return false
		}

		cb.canaryTaken.Store(false)
		fallthrough
	case circuitBreakerStateHalfOpen:
		return cb.canaryTaken.CompareAndSwap(false, true)
	}

	return false
}

// MarkSuccessful records a successful request outcome.
func (cb *circuitBreaker) MarkSuccessful() {
	if cb.disabled {
		return
	}

	cb.failures.Store(0)

	if circuitBreakerState(cb.state.Load()) == circuitBreakerStateHalfOpen {
		cb.state.Store(uint32(circuitBreakerStateClosed))
	}
}

// MarkFailure records a failed request outcome.  A failed canary reopens the
// breaker and restarts the cool-down.
func (cb *circuitBreaker) MarkFailure() {
	if cb.disabled {
		return
	}

	if circuitBreakerState(cb.state.Load()) == circuitBreakerStateHalfOpen {
		cb.open()
		return
	}

	failures := cb.failures.Inc()
	if failures >= cb.failureThreshold {
		cb.open()
	}
}

// Reset returns the breaker to the closed state with no recorded failures.
func (cb *circuitBreaker) Reset() {
	cb.failures.Store(0)
	cb.state.Store(uint32(circuitBreakerStateClosed))
}

func (cb *circuitBreaker) open() {
	cb.failures.Store(0)
	cb.openedAt.Store(time.Now().UnixNano())
	cb.state.Store(uint32(circuitBreakerStateOpen))
}
