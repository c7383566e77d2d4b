package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/notekeep/notes-api/internal/api/metrics"
	"github.com/notekeep/notes-api/internal/core/ports"
)

// NoteHandler handles all note operations. Every route it serves sits behind
// the Auth middleware; the owner id always comes from the verified token,
// never from the request body.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// Create handles POST /api/notes.
//
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNoteRequest  true  "Note fields"
// @Success      200   {object}  noteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.service.Create(c.Request().Context(), userID, toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// List handles GET /api/notes: all of the caller's notes, pinned first,
// then most recently updated first.
//
// @Summary      List own notes
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   noteResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	notes, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toNoteListResponse(notes))
}

// Get handles GET /api/notes/:id.
//
// @Summary      Get a single note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note id"
// @Success      200  {object}  noteResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/notes/{id} [get]
func (h *NoteHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	note, err := h.service.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// Update handles PUT /api/notes/:id, replacing only the supplied fields.
//
// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Note id"
// @Param        body  body      updateNoteRequest  true  "Fields to replace"
// @Success      200   {object}  noteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/notes/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	note, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), toNoteUpdate(req))
	if err != nil {
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// Delete handles DELETE /api/notes/:id.
//
// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note id"
// @Success      200  {object}  deleteNoteResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, deleteNoteResponse{Msg: "note deleted"})
}

// TogglePin handles PATCH /api/notes/:id/pin.
//
// @Summary      Toggle a note's pinned flag
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note id"
// @Success      200  {object}  noteResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/notes/{id}/pin [patch]
func (h *NoteHandler) TogglePin(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	note, err := h.service.TogglePin(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("toggle_pin").Inc()
	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// Search handles GET /api/notes/search/:query. An empty query never reaches
// this handler; that path is served by List.
//
// @Summary      Search own notes
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        query  path      string  true  "Substring to match against title, content, or tags"
// @Success      200    {array}   noteResponse
// @Failure      401    {object}  errorResponse
// @Router       /api/notes/search/{query} [get]
func (h *NoteHandler) Search(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	notes, err := h.service.Search(c.Request().Context(), userID, c.Param("query"))
	if err != nil {
		return err
	}

	metrics.SearchesTotal.Inc()
	return c.JSON(http.StatusOK, toNoteListResponse(notes))
}
