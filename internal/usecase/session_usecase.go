package usecase

import (
	"context"

	"folio/internal/domain/service"
)

// CredentialUpdate is the admin credential-change request. CurrentPassword
// must always be supplied; NewEmail and NewPassword are each optional but at
// least one must be set.
type CredentialUpdate struct {
	CurrentPassword string
	NewEmail        string
	NewPassword     string
}

// SessionUsecase defines the interface for admin authentication. Visitors
// never hold a session; reads are open and writes require a valid token.
type SessionUsecase interface {
	// Login verifies the email/password pair and returns a session token.
	// Fails with ErrInvalidCredentials on a bad email or password, leaving
	// all stored state untouched.
	Login(ctx context.Context, email, password string) (string, error)

	// Authenticate validates a session token and returns its claims.
	Authenticate(ctx context.Context, token string) (*service.AdminClaims, error)

	// UpdateCredentials re-proves the current password and changes the
	// admin email, the password, or both. Fails with
	// ErrReauthenticationRequired when the session's authentication moment
	// is older than the configured freshness window, and with
	// ErrEmailAlreadyInUse when the new email is taken.
	UpdateCredentials(ctx context.Context, claims *service.AdminClaims, update *CredentialUpdate) (string, error)
}
