// Package redis keeps rate-limit counters in Redis so every API instance shares them.
package redis

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// FixedWindowLimiter implements ports.RateLimiter with one counter per key and window.
// The first hit of a window creates the counter with the window as TTL.
type FixedWindowLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func NewFixedWindowLimiter(client *redis.Client, limit int, window time.Duration) (*FixedWindowLimiter, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("redis client")
	}
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("rate limit", limit, 1, "unbounded")
	}
	if window < time.Second {
		return nil, errs.NewValueIsOutOfRangeError("rate limit window", window, time.Second, "unbounded")
	}
	return &FixedWindowLimiter{client: client, limit: int64(limit), window: window}, nil
}

func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	if key == "" {
		return false, 0, errs.NewValueIsRequiredError("rate limit key")
	}

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, keyPrefix+key)
		pipe.ExpireNX(ctx, keyPrefix+key, l.window)
		ttl = pipe.TTL(ctx, keyPrefix+key)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("count hit for %q: %w", key, err)
	}

	if incr.Val() <= l.limit {
		return true, 0, nil
	}

	retryAfter := ttl.Val()
	if retryAfter <= 0 {
		retryAfter = l.window
	}
	return false, retryAfter, nil
}
