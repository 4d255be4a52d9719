package repository

import (
	"context"
	"errors"

	"folio/internal/domain/entity"
)

// Domain-specific errors for credential persistence.
var (
	// ErrCredentialNotFound is returned when no credential exists for an email.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrCredentialExists is returned when saving under an email that already
	// holds a different credential.
	ErrCredentialExists = errors.New("credential already exists for this email")
)

// CredentialRepository stores admin login records keyed by email. Writes go
// through the server only; nothing here is ever exposed to visitors.
type CredentialRepository interface {
	// Find returns the credential stored for the given email.
	Find(ctx context.Context, email string) (*entity.AdminCredential, error)

	// Save persists a credential under its email, replacing any prior record
	// for that email.
	Save(ctx context.Context, cred *entity.AdminCredential) error

	// Rename moves the record stored under oldEmail to cred.Email, writing
	// cred's contents, as a single operation. A crash cannot leave the email
	// changed without the rest of the record. Fails with ErrCredentialExists
	// when cred.Email is already taken and ErrCredentialNotFound when
	// oldEmail has no record.
	Rename(ctx context.Context, oldEmail string, cred *entity.AdminCredential) error
}
