package retry

import (
	"context"
	"math"
	"math/rand"
	"time"

	errs "instaosint/pkg/errors"
)

// BackoffStrategy defines the interface for different backoff strategies
type BackoffStrategy interface {
	// NextDelay returns the delay to apply before the given attempt
	NextDelay(attempt int) time.Duration
}

// ExponentialBackoff implements exponential backoff with jitter
type ExponentialBackoff struct {
	BaseDelay    time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	JitterFactor float64
}

// DefaultExponentialBackoff returns a backoff with sensible defaults
func DefaultExponentialBackoff() *ExponentialBackoff {
	return &ExponentialBackoff{
		BaseDelay:    1 * time.Second,
		MaxDelay:     60 * time.Second,
		Multiplier:   2.0,
		JitterFactor: 0.1,
	}
}

// NextDelay calculates the next delay with exponential backoff and jitter
func (eb *ExponentialBackoff) NextDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	delay := float64(eb.BaseDelay) * math.Pow(eb.Multiplier, float64(attempt-1))
	if delay > float64(eb.MaxDelay) {
		delay = float64(eb.MaxDelay)
	}

	if eb.JitterFactor > 0 {
		jitter := delay * eb.JitterFactor
		delay += (rand.Float64() * 2 * jitter) - jitter
	}

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// ConstantBackoff implements a fixed-delay backoff
type ConstantBackoff struct {
	Delay time.Duration
}

// NextDelay returns the constant delay
func (cb *ConstantBackoff) NextDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return cb.Delay
}

// CooldownBackoff selects the delay from the error that triggered the
// retry: rate-limit responses cool down for a long fixed period, server
// errors for a short one, anything else falls back to the default
// strategy. The cooldowns come from configuration, not constants.
type CooldownBackoff struct {
	RateLimitCooldown   time.Duration
	ServerErrorCooldown time.Duration
	Fallback            BackoffStrategy

	lastErrType errs.ErrorType
}

// NewCooldownBackoff creates a cooldown-aware backoff
func NewCooldownBackoff(rateLimitCooldown, serverErrorCooldown time.Duration) *CooldownBackoff {
	return &CooldownBackoff{
		RateLimitCooldown:   rateLimitCooldown,
		ServerErrorCooldown: serverErrorCooldown,
		Fallback:            DefaultExponentialBackoff(),
	}
}

// Observe records the error type that will drive the next delay
func (cb *CooldownBackoff) Observe(errType errs.ErrorType) {
	cb.lastErrType = errType
}

// NextDelay returns the cooldown for the last observed error type
func (cb *CooldownBackoff) NextDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	switch cb.lastErrType {
	case errs.ErrorTypeRateLimit:
		return cb.RateLimitCooldown
	case errs.ErrorTypeServerError:
		return cb.ServerErrorCooldown
	default:
		return cb.Fallback.NextDelay(attempt)
	}
}

// Wait waits for the specified duration or until context is cancelled
func Wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
