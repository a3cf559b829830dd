package http

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// RateLimit counts hits per caller and route name. It must run after JWTAuth. When the
// counter store is unreachable the request is let through and the failure logged.
func RateLimit(limiter ports.RateLimiter, route string, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if limiter == nil {
			return next
		}
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			actor, err := ActorFrom(c)
			if err != nil {
				return err
			}

			allowed, retryAfter, err := limiter.Allow(ctx, actor.ID.String()+":"+route)
			if err != nil {
				logger.WarnContext(ctx, "Rate limiter unavailable", "route", route, "error", err)
				return next(c)
			}
			if !allowed {
				seconds := int(math.Ceil(retryAfter.Seconds()))
				c.Response().Header().Set("Retry-After", strconv.Itoa(max(seconds, 1)))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
