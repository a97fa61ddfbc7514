package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "ratelimit:chat:"

// RateLimiter throttles chatbot calls per client using a fixed one-minute
// window in Redis. The chat endpoint is unauthenticated, so callers are
// keyed by IP rather than user id.
type RateLimiter struct {
	client            *Client
	requestsPerMinute int
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(client *Client, requestsPerMinute int) *RateLimiter {
	return &RateLimiter{
		client:            client,
		requestsPerMinute: requestsPerMinute,
	}
}

// Allow reports whether a request under the given key fits the current
// window.
func (r *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	fullKey := rateLimitPrefix + key

	pipe := r.client.rdb.Pipeline()
	incrCmd := pipe.Incr(ctx, fullKey)
	pipe.ExpireNX(ctx, fullKey, time.Minute)

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return false, fmt.Errorf("failed to execute rate limit check: %w", err)
	}

	return incrCmd.Val() <= int64(r.requestsPerMinute), nil
}
