package domain

import (
	"errors"
	"time"
)

// DefaultNoteColor is applied when a note is created without a color.
const DefaultNoteColor = "#ffffff"

var ErrNoteNotFound = errors.New("note not found")
var ErrEmptyTitle = errors.New("note title is required")
var ErrEmptyContent = errors.New("note content is required")

// Note is a text note strictly owned by a single user. UserID never changes
// after creation; every query against the store filters by it.
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
