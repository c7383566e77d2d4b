package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/notekeep/notes-api/internal/core/domain"
	"github.com/notekeep/notes-api/pkg/logger"
)

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	logger.Reset()
	logger.Init(logger.Options{Level: "error"})

	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"empty title", domain.ErrEmptyTitle, http.StatusBadRequest, domain.ErrEmptyTitle.Error()},
		{"empty content", domain.ErrEmptyContent, http.StatusBadRequest, domain.ErrEmptyContent.Error()},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusBadRequest, "invalid credentials"},
		{"external account", domain.ErrExternalAccount, http.StatusBadRequest, "account uses external sign-in"},
		{"duplicate user", domain.ErrUserExists, http.StatusBadRequest, "user already exists"},
		{"identity mode conflict", domain.ErrIdentityModeConflict, http.StatusBadRequest, "conflicting identity modes"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"note not found", domain.ErrNoteNotFound, http.StatusNotFound, "note not found"},
		{"echo error passthrough", echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed token"), http.StatusUnauthorized, "missing or malformed token"},
		{"unexpected error", errors.New("mongo blew up"), http.StatusInternalServerError, "internal server error"},
	}

	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			e.HTTPErrorHandler(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}

			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["error"] != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, resp["error"])
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	logger.Reset()
	logger.Init(logger.Options{Level: "error"})

	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	req := httptest.NewRequest(http.MethodGet, "/api/notes/n1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(fmt.Errorf("get note: %w", domain.ErrNoteNotFound), c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	logger.Reset()
	logger.Init(logger.Options{Level: "error"})

	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = c.NoContent(http.StatusOK)

	// A committed response must not be overwritten.
	e.HTTPErrorHandler(domain.ErrNoteNotFound, c)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected committed 200 to survive, got %d", rec.Code)
	}
}
