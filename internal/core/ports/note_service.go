package ports

import (
	"context"

	"github.com/notekeep/notes-api/internal/core/domain"
)

// CreateNoteInput carries the data for a new note. Color and Tags are
// optional; the service applies defaults.
type CreateNoteInput struct {
	Title   string
	Content string
	Color   string
	Tags    []string
}

// NoteService defines note use-cases. OwnerID is the authenticated user's id
// extracted by the auth middleware; every operation is scoped by it.
type NoteService interface {
	Create(ctx context.Context, ownerID string, input CreateNoteInput) (*domain.Note, error)
	List(ctx context.Context, ownerID string) ([]*domain.Note, error)
	Get(ctx context.Context, ownerID, id string) (*domain.Note, error)
	Update(ctx context.Context, ownerID, id string, update NoteUpdate) (*domain.Note, error)
	Delete(ctx context.Context, ownerID, id string) error
	TogglePin(ctx context.Context, ownerID, id string) (*domain.Note, error)
	Search(ctx context.Context, ownerID, query string) ([]*domain.Note, error)
}
