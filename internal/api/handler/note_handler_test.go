package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/notekeep/notes-api/internal/api/middleware"
	"github.com/notekeep/notes-api/internal/core/domain"
	"github.com/notekeep/notes-api/internal/core/ports"
)

type stubNoteService struct {
	createFn    func(ctx context.Context, ownerID string, input ports.CreateNoteInput) (*domain.Note, error)
	listFn      func(ctx context.Context, ownerID string) ([]*domain.Note, error)
	getFn       func(ctx context.Context, ownerID, id string) (*domain.Note, error)
	updateFn    func(ctx context.Context, ownerID, id string, update ports.NoteUpdate) (*domain.Note, error)
	deleteFn    func(ctx context.Context, ownerID, id string) error
	togglePinFn func(ctx context.Context, ownerID, id string) (*domain.Note, error)
	searchFn    func(ctx context.Context, ownerID, query string) ([]*domain.Note, error)
}

func (s *stubNoteService) Create(ctx context.Context, ownerID string, input ports.CreateNoteInput) (*domain.Note, error) {
	return s.createFn(ctx, ownerID, input)
}

func (s *stubNoteService) List(ctx context.Context, ownerID string) ([]*domain.Note, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubNoteService) Get(ctx context.Context, ownerID, id string) (*domain.Note, error) {
	return s.getFn(ctx, ownerID, id)
}

func (s *stubNoteService) Update(ctx context.Context, ownerID, id string, update ports.NoteUpdate) (*domain.Note, error) {
	return s.updateFn(ctx, ownerID, id, update)
}

func (s *stubNoteService) Delete(ctx context.Context, ownerID, id string) error {
	return s.deleteFn(ctx, ownerID, id)
}

func (s *stubNoteService) TogglePin(ctx context.Context, ownerID, id string) (*domain.Note, error) {
	return s.togglePinFn(ctx, ownerID, id)
}

func (s *stubNoteService) Search(ctx context.Context, ownerID, query string) ([]*domain.Note, error) {
	return s.searchFn(ctx, ownerID, query)
}

func sampleNote() *domain.Note {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Note{
		ID:        "n1",
		UserID:    "u1",
		Title:     "groceries",
		Content:   "milk, eggs",
		Color:     domain.DefaultNoteColor,
		IsPinned:  false,
		Tags:      []string{"shopping"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// authedContext builds a context carrying the identity the auth middleware
// would have attached.
func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, "u1")
	return c
}

func TestNoteHandler_Create_Success(t *testing.T) {
	e := testEcho()
	stub := &stubNoteService{
		createFn: func(_ context.Context, ownerID string, input ports.CreateNoteInput) (*domain.Note, error) {
			if ownerID != "u1" {
				t.Fatalf("unexpected owner: %s", ownerID)
			}
			if input.Title != "groceries" || input.Content != "milk, eggs" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return sampleNote(), nil
		},
	}
	h := NewNoteHandler(stub)

	body := strings.NewReader(`{"title":"groceries","content":"milk, eggs","tags":["shopping"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/notes", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "n1" || resp["color"] != domain.DefaultNoteColor {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestNoteHandler_Create_InvalidPayload(t *testing.T) {
	e := testEcho()
	stub := &stubNoteService{
		createFn: func(context.Context, string, ports.CreateNoteInput) (*domain.Note, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewNoteHandler(stub)

	for _, body := range []string{
		`{"content":"no title"}`,
		`{"title":"no content"}`,
		`{"title":"t","content":"c","color":"blue"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := authedContext(e, req, rec)

		err := h.Create(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %v", body, err)
		}
	}
}

func TestNoteHandler_Create_NoIdentity(t *testing.T) {
	e := testEcho()
	h := NewNoteHandler(&stubNoteService{})

	body := strings.NewReader(`{"title":"t","content":"c"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/notes", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestNoteHandler_List(t *testing.T) {
	e := testEcho()
	stub := &stubNoteService{
		listFn: func(_ context.Context, ownerID string) ([]*domain.Note, error) {
			if ownerID != "u1" {
				t.Fatalf("unexpected owner: %s", ownerID)
			}
			return []*domain.Note{sampleNote()}, nil
		},
	}
	h := NewNoteHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "n1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestNoteHandler_List_Empty(t *testing.T) {
	e := testEcho()
	stub := &stubNoteService{
		listFn: func(context.Context, string) ([]*domain.Note, error) {
			return nil, nil
		},
	}
	h := NewNoteHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// A nil slice serializes as [], never null.
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestNoteHandler_Get_NotFound(t *testing.T) {
	e := testEcho()
	stub := &stubNoteService{
		getFn: func(_ context.Context, _, id string) (*domain.Note, error) {
			if id != "missing" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil, domain.ErrNoteNotFound
		},
	}
	h := NewNoteHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/notes/missing", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); err != domain.ErrNoteNotFound {
		t.Fatalf("expected ErrNoteNotFound passthrough, got %v", err)
	}
}

func TestNoteHandler_Update(t *testing.T) {
	e := testEcho()
	stub := &stubNoteService{
		updateFn: func(_ context.Context, ownerID, id string, update ports.NoteUpdate) (*domain.Note, error) {
			if ownerID != "u1" || id != "n1" {
				t.Fatalf("unexpected args: %s %s", ownerID, id)
			}
			if update.Title == nil || *update.Title != "new title" {
				t.Fatalf("expected title update, got %+v", update)
			}
			if update.Content != nil {
				t.Fatalf("content should stay omitted")
			}
			if update.IsPinned == nil || *update.IsPinned {
				t.Fatalf("expected isPinned=false to survive as a deliberate value")
			}
			n := sampleNote()
			n.Title = "new title"
			return n, nil
		},
	}
	h := NewNoteHandler(stub)

	body := strings.NewReader(`{"title":"new title","isPinned":false}`)
	req := httptest.NewRequest(http.MethodPut, "/api/notes/n1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("n1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNoteHandler_Delete(t *testing.T) {
	e := testEcho()
	called := false
	stub := &stubNoteService{
		deleteFn: func(_ context.Context, ownerID, id string) error {
			called = true
			if ownerID != "u1" || id != "n1" {
				t.Fatalf("unexpected args: %s %s", ownerID, id)
			}
			return nil
		},
	}
	h := NewNoteHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/notes/n1", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("n1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("service not called")
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["msg"] != "note deleted" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestNoteHandler_TogglePin(t *testing.T) {
	e := testEcho()
	stub := &stubNoteService{
		togglePinFn: func(_ context.Context, ownerID, id string) (*domain.Note, error) {
			n := sampleNote()
			n.IsPinned = true
			return n, nil
		},
	}
	h := NewNoteHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/api/notes/n1/pin", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("n1")

	if err := h.TogglePin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["isPinned"] != true {
		t.Fatalf("expected pinned note, got %+v", resp)
	}
}

func TestNoteHandler_Search(t *testing.T) {
	e := testEcho()
	stub := &stubNoteService{
		searchFn: func(_ context.Context, ownerID, query string) ([]*domain.Note, error) {
			if query != "milk" {
				t.Fatalf("unexpected query: %s", query)
			}
			return []*domain.Note{sampleNote()}, nil
		},
	}
	h := NewNoteHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/notes/search/milk", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)
	c.SetParamNames("query")
	c.SetParamValues("milk")

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected one result, got %+v", resp)
	}
}
