package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/notekeep/notes-api/internal/api/metrics"
	"github.com/notekeep/notes-api/internal/token"
)

// Context keys under which the verified identity is stored.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxName   = "name"
)

// Auth is the sole authorization boundary: it extracts the bearer token,
// verifies it, and injects the identity into the request context. Requests
// without a valid token never reach a handler.
func Auth(issuer *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			id, err := issuer.Verify(parts[1])
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserID, id.UserID)
			c.Set(CtxEmail, id.Email)
			c.Set(CtxName, id.Name)

			return next(c)
		}
	}
}
