package ports

import (
	"context"

	"github.com/notekeep/notes-api/internal/core/domain"
)

// NoteUpdate carries the fields replaced by an update. Nil pointers mean
// "leave unchanged"; Tags replaces the whole set when non-nil.
type NoteUpdate struct {
	Title    *string
	Content  *string
	Color    *string
	Tags     []string
	IsPinned *bool
}

// NoteRepository defines persistence for notes. Every method takes the
// owning user's id and scopes its query by it; an id that exists but belongs
// to another user is reported as domain.ErrNoteNotFound, identically to a
// truly absent id.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
	// FindByOwner returns all notes for the owner, pinned first, then most
	// recently updated first.
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Note, error)
	FindByID(ctx context.Context, ownerID, id string) (*domain.Note, error)
	// Update replaces the supplied fields and returns the updated note.
	Update(ctx context.Context, ownerID, id string, update NoteUpdate) (*domain.Note, error)
	Delete(ctx context.Context, ownerID, id string) error
	// Search matches query case-insensitively against title, content, or any
	// tag, ordered most recently updated first.
	Search(ctx context.Context, ownerID, query string) ([]*domain.Note, error)
}
