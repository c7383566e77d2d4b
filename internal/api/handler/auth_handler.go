package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/notekeep/notes-api/internal/api/metrics"
	"github.com/notekeep/notes-api/internal/core/domain"
	"github.com/notekeep/notes-api/internal/core/ports"
)

// AuthHandler handles signup, signin, and profile lookup.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup creates a new password-based account and returns a session token.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.authService.Signup(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusOK, authResponse{Token: res.Token, User: toPublicUser(res.User)})
}

// Signin authenticates an email/password pair and returns a session token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.authService.Signin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.SigninsTotal.WithLabelValues(signinResult(err)).Inc()
		return err
	}

	metrics.SigninsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: res.Token, User: toPublicUser(res.User)})
}

// signinResult maps a signin failure to its metric label.
func signinResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrExternalAccount):
		return "external_account"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "bad_password"
	default:
		return "error"
	}
}

// Profile returns the authenticated account's public fields. The account may
// have been deleted since the token was issued; that surfaces as a 404.
//
// @Summary      Get own profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{User: toPublicUser(user)})
}
