package handler

import (
	"log/slog"
	"net/http"

	"folio/internal/delivery/http/response"
	"folio/internal/domain/entity"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContactHandler holds dependencies for the contact form and the admin inbox.
type ContactHandler struct {
	uc     usecase.InboxUsecase
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.InboxUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		uc:     uc,
		logger: logger,
	}
}

type contactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// Submit records a visitor contact-form submission.
func (h *ContactHandler) Submit(c echo.Context) error {
	var input contactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	stored, err := h.uc.Submit(c.Request().Context(), &entity.ContactRequest{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": stored.ID}, "Message received")
}

// List returns all contact requests, newest first.
func (h *ContactHandler) List(c echo.Context) error {
	requests, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

type markReadInput struct {
	Read bool `json:"read"`
}

// MarkRead toggles the read flag on one request.
func (h *ContactHandler) MarkRead(c echo.Context) error {
	var input markReadInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid read input")
	}

	if err := h.uc.MarkRead(c.Request().Context(), c.Param("id"), input.Read); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Request updated")
}

// Delete removes one request.
func (h *ContactHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Request deleted")
}
