package reddit

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// ProactiveRate is the proactive throttle rate (~1 req/sec, well under
	// Reddit's 60 requests/minute quota for OAuth clients).
	ProactiveRate = 1.0

	// MinBuffer is the minimum remaining requests before waiting for reset.
	MinBuffer = 5

	// HeaderRateRemaining is the remaining requests header. Reddit reports
	// it as a float string.
	HeaderRateRemaining = "X-Ratelimit-Remaining"

	// HeaderRateReset is the seconds-until-reset header.
	HeaderRateReset = "X-Ratelimit-Reset"
)

// RateLimiter implements dual-strategy rate limiting for the Reddit API:
// a proactive token bucket plus reactive tracking of the quota headers.
type RateLimiter struct {
	mu        sync.Mutex
	remaining int
	resetTime time.Time
	bucket    *rate.Limiter
	minBuffer int
}

// NewRateLimiter creates a new rate limiter with proactive throttling.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		remaining: 60, // Assume full per-minute quota initially
		bucket:    rate.NewLimiter(rate.Limit(ProactiveRate), 1),
		minBuffer: MinBuffer,
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	remaining := r.remaining
	resetTime := r.resetTime
	r.mu.Unlock()

	if remaining < r.minBuffer && time.Now().Before(resetTime) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(resetTime)):
		}
	}

	return nil
}

// UpdateFromResponse updates rate limit state from response headers.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if v := resp.Header.Get(HeaderRateRemaining); v != "" {
		if remaining, err := strconv.ParseFloat(v, 64); err == nil {
			r.remaining = int(remaining)
		}
	}
	if v := resp.Header.Get(HeaderRateReset); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			r.resetTime = time.Now().Add(time.Duration(seconds) * time.Second)
		}
	}
}

// Remaining reports the last observed remaining quota.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}
