package ratelimit

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Limiter defines the interface for request pacing
type Limiter interface {
	// Wait blocks until the pacing policy allows another request, then
	// records the request. It returns early if the context is cancelled.
	Wait(ctx context.Context) error
	// RequestCount returns the number of requests recorded so far
	RequestCount() int
	// Reset clears the pacing state
	Reset()
}

// Pacer enforces a minimum interval between consecutive requests. When a
// request arrives before the interval has elapsed, the caller sleeps for
// the remainder plus a random jitter. The jitter spreads request timing
// so outbound traffic does not tick at a fixed cadence.
type Pacer struct {
	minDelay  time.Duration
	maxJitter time.Duration

	mu       sync.Mutex
	lastCall time.Time
	count    int
	rnd      *rand.Rand
}

// NewPacer creates a pacer with the given minimum inter-request delay
// and jitter ceiling.
func NewPacer(minDelay, maxJitter time.Duration) *Pacer {
	return &Pacer{
		minDelay:  minDelay,
		maxJitter: maxJitter,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Wait blocks until at least the minimum delay has passed since the
// previous call, then records the call. The first call never waits.
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	var delay time.Duration
	if p.count > 0 {
		elapsed := time.Since(p.lastCall)
		if elapsed < p.minDelay {
			delay = p.minDelay - elapsed + p.jitter()
		}
	}
	p.mu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	p.mu.Lock()
	p.lastCall = time.Now()
	p.count++
	p.mu.Unlock()
	return nil
}

// RequestCount returns the number of requests recorded so far
func (p *Pacer) RequestCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

// Reset clears the last-call timestamp and the request counter
func (p *Pacer) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastCall = time.Time{}
	p.count = 0
}

func (p *Pacer) jitter() time.Duration {
	if p.maxJitter <= 0 {
		return 0
	}
	return time.Duration(p.rnd.Int63n(int64(p.maxJitter) + 1))
}
