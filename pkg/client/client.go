// Package client is a small typed client for the notes REST API, used by the
// notesctl command line tool.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError carries the status code and error message of a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// ErrUnauthorized marks responses rejected for a missing or expired token.
var ErrUnauthorized = errors.New("client: unauthorized")

// User mirrors the API's public user shape.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

// Note mirrors the API's note shape.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	IsPinned  bool      `json:"isPinned"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthResponse is returned by signup and signin.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// NoteUpdate carries a partial note update. Nil fields are omitted from the
// request body and left untouched by the server.
type NoteUpdate struct {
	Title    *string  `json:"title,omitempty"`
	Content  *string  `json:"content,omitempty"`
	Color    *string  `json:"color,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	IsPinned *bool    `json:"isPinned,omitempty"`
}

// Client talks to a notes API server. Token may be empty for the
// unauthenticated signup and signin calls.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New builds a Client for the server at baseURL (e.g. "http://localhost:8000").
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Signup registers a new account and returns the issued token.
func (c *Client) Signup(ctx context.Context, email, password, name string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password, "name": name}
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/signup", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signin exchanges credentials for a token.
func (c *Client) Signin(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/signin", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile returns the account behind the client's token.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var resp struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// CreateNote adds a note. Color and tags may be empty.
func (c *Client) CreateNote(ctx context.Context, title, content, color string, tags []string) (*Note, error) {
	body := map[string]any{"title": title, "content": content}
	if color != "" {
		body["color"] = color
	}
	if len(tags) > 0 {
		body["tags"] = tags
	}
	var note Note
	if err := c.do(ctx, http.MethodPost, "/api/notes", body, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// ListNotes returns all of the caller's notes, pinned first.
func (c *Client) ListNotes(ctx context.Context) ([]Note, error) {
	var notes []Note
	if err := c.do(ctx, http.MethodGet, "/api/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetNote fetches one note by id.
func (c *Client) GetNote(ctx context.Context, id string) (*Note, error) {
	var note Note
	if err := c.do(ctx, http.MethodGet, "/api/notes/"+url.PathEscape(id), nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote replaces the fields present in update.
func (c *Client) UpdateNote(ctx context.Context, id string, update NoteUpdate) (*Note, error) {
	var note Note
	if err := c.do(ctx, http.MethodPut, "/api/notes/"+url.PathEscape(id), update, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteNote removes one note by id.
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+url.PathEscape(id), nil, nil)
}

// TogglePin flips the note's pinned flag and returns the updated note.
func (c *Client) TogglePin(ctx context.Context, id string) (*Note, error) {
	var note Note
	if err := c.do(ctx, http.MethodPatch, "/api/notes/"+url.PathEscape(id)+"/pin", nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// SearchNotes returns the caller's notes matching query in title, content,
// or tags.
func (c *Client) SearchNotes(ctx context.Context, query string) ([]Note, error) {
	var notes []Note
	if err := c.do(ctx, http.MethodGet, "/api/notes/search/"+url.PathEscape(query), nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: readAPIError(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readAPIError extracts the server's error envelope, falling back to the raw
// body when it is not JSON.
func readAPIError(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return "unknown error"
	}

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return strings.TrimSpace(string(data))
}
