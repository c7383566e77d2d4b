package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/notekeep/notes-api/internal/core/domain"
	"github.com/notekeep/notes-api/internal/core/ports"
)

// NoteService implements note use-cases. Every operation is scoped by the
// owner id handed down from the auth middleware; the repositories bake that
// filter into their queries, so a foreign note id behaves exactly like a
// nonexistent one.
type NoteService struct {
	repo ports.NoteRepository
	log  zerolog.Logger
}

func NewNoteService(repo ports.NoteRepository, log zerolog.Logger) *NoteService {
	return &NoteService{repo: repo, log: log}
}

// Create validates and stores a new note. Title and content must be
// non-empty after trimming; color defaults to domain.DefaultNoteColor, tags
// to an empty set, pinned to false.
func (s *NoteService) Create(ctx context.Context, ownerID string, input ports.CreateNoteInput) (*domain.Note, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if content == "" {
		return nil, domain.ErrEmptyContent
	}

	color := input.Color
	if color == "" {
		color = domain.DefaultNoteColor
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	note := &domain.Note{
		UserID:   ownerID,
		Title:    title,
		Content:  content,
		Color:    color,
		IsPinned: false,
		Tags:     tags,
	}

	created, err := s.repo.Create(ctx, note)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", ownerID).Msg("failed to create note")
		return nil, err
	}

	s.log.Info().Str("user_id", ownerID).Str("note_id", created.ID).Msg("note created")
	return created, nil
}

// List returns all of the owner's notes, pinned first, then most recently
// updated first.
func (s *NoteService) List(ctx context.Context, ownerID string) ([]*domain.Note, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *NoteService) Get(ctx context.Context, ownerID, id string) (*domain.Note, error) {
	return s.repo.FindByID(ctx, ownerID, id)
}

func (s *NoteService) Update(ctx context.Context, ownerID, id string, update ports.NoteUpdate) (*domain.Note, error) {
	updated, err := s.repo.Update(ctx, ownerID, id, update)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", ownerID).Str("note_id", id).Msg("note updated")
	return updated, nil
}

func (s *NoteService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", ownerID).Str("note_id", id).Msg("note deleted")
	return nil
}

// TogglePin flips the pinned flag. Read-then-write rather than a blind
// update so the response carries the resulting state.
func (s *NoteService) TogglePin(ctx context.Context, ownerID, id string) (*domain.Note, error) {
	note, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	pinned := !note.IsPinned
	return s.repo.Update(ctx, ownerID, id, ports.NoteUpdate{IsPinned: &pinned})
}

// Search matches query case-insensitively against titles, contents, and
// tags, most recently updated first. Callers wanting everything use List;
// an empty query is not a valid call path.
func (s *NoteService) Search(ctx context.Context, ownerID, query string) ([]*domain.Note, error) {
	return s.repo.Search(ctx, ownerID, query)
}
