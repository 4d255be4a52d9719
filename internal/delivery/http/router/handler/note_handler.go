package handler

import (
	"log/slog"
	"net/http"

	"folio/internal/delivery/http/response"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NoteHandler holds dependencies for the admin self-note endpoints.
type NoteHandler struct {
	uc     usecase.NoteUsecase
	logger *slog.Logger
}

// NewNoteHandler is the constructor for NoteHandler, injected by Fx.
func NewNoteHandler(uc usecase.NoteUsecase, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		uc:     uc,
		logger: logger,
	}
}

type noteInput struct {
	Message string `json:"message" validate:"required"`
}

// Add records a new note.
func (h *NoteHandler) Add(c echo.Context) error {
	var input noteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	note, err := h.uc.Add(c.Request().Context(), input.Message)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, note, "Note added")
}

// List returns all notes, newest first.
func (h *NoteHandler) List(c echo.Context) error {
	notes, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notes, "")
}

// Delete removes one note.
func (h *NoteHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Note deleted")
}
