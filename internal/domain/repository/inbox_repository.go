package repository

import (
	"context"
	"errors"

	"folio/internal/domain/entity"
)

// ErrRequestNotFound is returned when a contact request is not found.
var ErrRequestNotFound = errors.New("contact request not found")

// InboxRepository persists visitor contact requests. IDs are assigned by the
// storage layer and never reused after deletion.
type InboxRepository interface {
	// Add persists a new contact request and returns it with its assigned ID.
	Add(ctx context.Context, req *entity.ContactRequest) (*entity.ContactRequest, error)

	// List returns all contact requests, newest first.
	List(ctx context.Context) ([]*entity.ContactRequest, error)

	// SetRead sets the read flag on one request.
	SetRead(ctx context.Context, id string, read bool) error

	// Delete removes one request.
	Delete(ctx context.Context, id string) error
}
