package handler

import (
	"log/slog"
	"net/http"

	"folio/internal/delivery/http/middleware"
	"folio/internal/delivery/http/response"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for admin authentication endpoints.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenOutput struct {
	Token string `json:"token"`
}

// Login verifies the email/password pair and returns a session token.
func (h *SessionHandler) Login(c echo.Context) error {
	var input loginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	token, err := h.uc.Login(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenOutput{Token: token}, "Login successful")
}

// Logout acknowledges the end of a session. Tokens are stateless, so the
// client discards its copy; nothing is revoked server-side.
func (h *SessionHandler) Logout(c echo.Context) error {
	claims := middleware.AdminClaims(c)
	if claims == nil {
		return domainerrors.ErrUnauthorized
	}
	h.logger.Info("Admin logged out", slog.String("email", claims.Email))

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

type updateCredentialsInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewEmail        string `json:"newEmail" validate:"omitempty,email"`
	NewPassword     string `json:"newPassword"`
}

// UpdateCredentials changes the admin email, password, or both, after
// re-proving the current password. Returns a fresh token bound to the final
// email.
func (h *SessionHandler) UpdateCredentials(c echo.Context) error {
	claims := middleware.AdminClaims(c)
	if claims == nil {
		return domainerrors.ErrUnauthorized
	}

	var input updateCredentialsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credential input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	token, err := h.uc.UpdateCredentials(c.Request().Context(), claims, &usecase.CredentialUpdate{
		CurrentPassword: input.CurrentPassword,
		NewEmail:        input.NewEmail,
		NewPassword:     input.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenOutput{Token: token}, "Credentials updated")
}
