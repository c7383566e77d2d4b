package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Signin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/signin" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["email"] != "a@b.c" || body["password"] != "secret1" {
			t.Fatalf("unexpected body: %+v", body)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok",
			"user":  map[string]string{"id": "u1", "email": "a@b.c", "name": "A"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	resp, err := c.Signin(context.Background(), "a@b.c", "secret1")
	if err != nil {
		t.Fatalf("signin: %v", err)
	}
	if resp.Token != "tok" || resp.User == nil || resp.User.ID != "u1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestClient_BearerHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Fatalf("unexpected authorization header: %q", got)
		}
		json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	notes, err := c.ListNotes(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("expected no notes, got %+v", notes)
	}
}

func TestClient_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid or expired token"})
	}))
	defer srv.Close()

	c := New(srv.URL, "expired")
	if _, err := c.Profile(context.Background()); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "note not found"})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.GetNote(context.Background(), "missing")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "note not found" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}

func TestClient_UpdateNote_OmitsNilFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if _, ok := body["content"]; ok {
			t.Fatalf("nil content should be omitted, body: %+v", body)
		}
		if body["title"] != "renamed" {
			t.Fatalf("expected title in body, got %+v", body)
		}
		json.NewEncoder(w).Encode(map[string]any{"id": "n1", "title": "renamed"})
	}))
	defer srv.Close()

	title := "renamed"
	c := New(srv.URL, "tok")
	note, err := c.UpdateNote(context.Background(), "n1", NoteUpdate{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if note.Title != "renamed" {
		t.Fatalf("unexpected note: %+v", note)
	}
}

func TestClient_SearchEscapesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/notes/search/milk and eggs" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]map[string]any{{"id": "n1"}})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	notes, err := c.SearchNotes(context.Background(), "milk and eggs")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected one note, got %+v", notes)
	}
}
