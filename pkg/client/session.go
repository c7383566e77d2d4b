package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoSession is returned when a command needs a saved token and none exists.
var ErrNoSession = errors.New("client: not signed in")

// Session is the locally persisted sign-in state: the bearer token plus the
// identity it was issued for. It lives in a JSON file readable only by the
// owning user.
type Session struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// DefaultSessionPath places the session file under the user config
// directory, falling back to the working directory when none is available.
func DefaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".notes-session.json"
	}
	return filepath.Join(dir, "notesctl", "session.json")
}

// LoadSession reads the session file at path. A missing file resolves to
// ErrNoSession.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if s.Token == "" {
		return nil, ErrNoSession
	}
	return &s, nil
}

// SaveSession writes the session to path with owner-only permissions,
// creating parent directories as needed.
func SaveSession(path string, s *Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// ClearSession removes the session file. Clearing an absent session is not
// an error.
func ClearSession(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
