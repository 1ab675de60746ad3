package cms

import (
	"context"

	"golang.org/x/time/rate"
)

// rateLimiter is a token bucket in front of the backend.
// A nil *rateLimiter never blocks.
type rateLimiter struct {
	limiter *rate.Limiter
}

// newRateLimiter returns nil when requestsPerSecond is zero, which disables limiting.
func newRateLimiter(requestsPerSecond float64, burst int) *rateLimiter {
	if requestsPerSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
}

// Wait blocks until a token is available or ctx is done.
func (r *rateLimiter) Wait(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.limiter.Wait(ctx)
}
