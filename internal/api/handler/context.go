package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/notekeep/notes-api/internal/api/middleware"
)

// ctxUserID extracts the authenticated user's id injected by the Auth
// middleware and fast-fails before any service call when it is absent
// (i.e. the route was registered without the middleware).
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
