package reddit

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_UpdateFromResponse(t *testing.T) {
	limiter := NewRateLimiter()

	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set(HeaderRateRemaining, "42.0")
	resp.Header.Set(HeaderRateReset, "30")

	limiter.UpdateFromResponse(resp)

	assert.Equal(t, 42, limiter.Remaining())
}

func TestRateLimiter_IgnoresMalformedHeaders(t *testing.T) {
	limiter := NewRateLimiter()

	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set(HeaderRateRemaining, "not-a-number")
	limiter.UpdateFromResponse(resp)

	assert.Equal(t, 60, limiter.Remaining())

	limiter.UpdateFromResponse(nil)
	assert.Equal(t, 60, limiter.Remaining())
}

func TestRateLimiter_WaitRespectsContext(t *testing.T) {
	limiter := NewRateLimiter()

	// Exhaust quota and set a far-off reset so Wait would block.
	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set(HeaderRateRemaining, "0")
	resp.Header.Set(HeaderRateReset, "600")
	limiter.UpdateFromResponse(resp)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRateLimiter_WaitPassesWithQuota(t *testing.T) {
	limiter := NewRateLimiter()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, limiter.Wait(ctx))
}
