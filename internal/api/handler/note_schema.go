package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createNoteRequest struct {
	Title   string   `json:"title"   validate:"required"`
	Content string   `json:"content" validate:"required"`
	Color   string   `json:"color"   validate:"omitempty,hexcolor"`
	Tags    []string `json:"tags"`
}

// updateNoteRequest replaces only the fields present in the body. Pointers
// distinguish "omitted" from a deliberate zero value (e.g. isPinned:false).
type updateNoteRequest struct {
	Title    *string  `json:"title"`
	Content  *string  `json:"content"`
	Color    *string  `json:"color"`
	Tags     []string `json:"tags"`
	IsPinned *bool    `json:"isPinned"`
}

// noteResponse is the transport view of a note, intentionally separate from
// the domain type so the JSON contract is not coupled to internal changes.
type noteResponse struct {
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

type deleteNoteResponse struct {
	Msg string `json:"msg"`
}
