package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"folio/internal/delivery/http/response"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PortfolioHandler holds dependencies for the content endpoints.
type PortfolioHandler struct {
	uc     usecase.ContentUsecase
	logger *slog.Logger
}

// NewPortfolioHandler is the constructor for PortfolioHandler, injected by Fx.
func NewPortfolioHandler(uc usecase.ContentUsecase, logger *slog.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns the whole portfolio document.
func (h *PortfolioHandler) Get(c echo.Context) error {
	doc, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, doc, "")
}

// Replace overwrites the whole document with the request body.
func (h *PortfolioHandler) Replace(c echo.Context) error {
	var doc entity.PortfolioDocument
	if err := c.Bind(&doc); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid portfolio document")
	}

	if err := h.uc.Replace(c.Request().Context(), &doc); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Portfolio saved")
}

// Projects returns the projects gallery, optionally filtered by the
// category query parameter.
func (h *PortfolioHandler) Projects(c echo.Context) error {
	projects, err := h.uc.Projects(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, projects, "")
}

// Watch streams document snapshots as server-sent events. The first event
// carries the current state; one more follows on every change. Backends
// without push updates answer 501.
func (h *PortfolioHandler) Watch(c echo.Context) error {
	ctx := c.Request().Context()

	updates := make(chan *entity.PortfolioDocument, 1)
	unsubscribe, err := h.uc.Watch(ctx, func(doc *entity.PortfolioDocument) {
		// Keep only the most recent snapshot when the consumer lags;
		// the latest delivered state is authoritative.
		for {
			select {
			case updates <- doc:
				return
			default:
				select {
				case <-updates:
				default:
				}
			}
		}
	})
	if err != nil {
		return errors.WithStack(err)
	}
	defer unsubscribe()

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case doc := <-updates:
			data, err := json.Marshal(doc)
			if err != nil {
				h.logger.Error("Failed to encode portfolio snapshot", slog.Any("error", err))

				continue
			}
			if _, err := fmt.Fprintf(resp, "data: %s\n\n", data); err != nil {
				return nil
			}
			resp.Flush()
		}
	}
}

type editFieldInput struct {
	RawText string `json:"rawText"`
}

// EditField replaces one document field from operator-typed text.
func (h *PortfolioHandler) EditField(c echo.Context) error {
	var input editFieldInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid edit input")
	}

	if err := h.uc.EditField(c.Request().Context(), c.Param("field"), input.RawText); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Field updated")
}

// EditSkillCategory replaces one skill category from a comma-joined list.
func (h *PortfolioHandler) EditSkillCategory(c echo.Context) error {
	var input editFieldInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid edit input")
	}

	if err := h.uc.EditSkillCategory(c.Request().Context(), c.Param("category"), input.RawText); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Skills updated")
}

type addItemInput struct {
	Kind   string            `json:"kind" validate:"required"`
	Fields map[string]string `json:"fields" validate:"required"`
}

// AddItem appends one item to a document sequence.
func (h *PortfolioHandler) AddItem(c echo.Context) error {
	var input addItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.AddItem(c.Request().Context(), input.Kind, input.Fields); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Item added")
}

// DeleteItem removes the item at an index from a document sequence.
func (h *PortfolioHandler) DeleteItem(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("index must be an integer")
	}

	if err := h.uc.DeleteItem(c.Request().Context(), c.Param("field"), index); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item deleted")
}

type profileImageInput struct {
	Image string `json:"image" validate:"required"`
}

// UpdateProfileImage patches the profile image only.
func (h *PortfolioHandler) UpdateProfileImage(c echo.Context) error {
	var input profileImageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid image input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateProfileImage(c.Request().Context(), input.Image); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile image updated")
}
