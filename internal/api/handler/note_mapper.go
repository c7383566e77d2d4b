package handler

import (
	"github.com/notekeep/notes-api/internal/core/domain"
	"github.com/notekeep/notes-api/internal/core/ports"
)

func toCreateInput(req createNoteRequest) ports.CreateNoteInput {
	return ports.CreateNoteInput{
		Title:   req.Title,
		Content: req.Content,
		Color:   req.Color,
		Tags:    req.Tags,
	}
}

func toNoteUpdate(req updateNoteRequest) ports.NoteUpdate {
	return ports.NoteUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Color:    req.Color,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
	}
}

func toNoteResponse(n *domain.Note) noteResponse {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return noteResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Content:   n.Content,
		Color:     n.Color,
		IsPinned:  n.IsPinned,
		Tags:      tags,
		CreatedAt: n.CreatedAt.UTC(),
		UpdatedAt: n.UpdatedAt.UTC(),
	}
}

func toNoteListResponse(notes []*domain.Note) []noteResponse {
	out := make([]noteResponse, len(notes))
	for i, n := range notes {
		out[i] = toNoteResponse(n)
	}
	return out
}
