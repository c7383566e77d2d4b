package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// AttemptLimiter is the interface the rate-limit middleware needs from the
// Redis login limiter.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// RateLimit guards credential endpoints, keyed by client IP. Limiter errors
// fail open: an unreachable Redis must not lock everyone out of signin.
func RateLimit(limiter AttemptLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, retryAfter, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("ip", c.RealIP()).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !ok {
				secs := int(retryAfter.Round(time.Second) / time.Second)
				if secs < 1 {
					secs = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many attempts")
			}
			return next(c)
		}
	}
}
