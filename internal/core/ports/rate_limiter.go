package ports

import (
	"context"
	"time"
)

// RateLimiter is an external counter store keyed by caller and route.
type RateLimiter interface {
	// Allow counts one hit for key and reports whether it is within the limit. When the limit
	// is exceeded, retryAfter is the time left in the current window.
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}
