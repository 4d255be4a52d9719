package usecase

import (
	"context"

	"folio/internal/domain/entity"
)

// InboxUsecase defines the interface for the contact-request inbox. Submit
// is the only visitor-facing operation; the rest are admin-only.
type InboxUsecase interface {
	// Submit records a visitor contact-form submission. The stored request
	// always starts unread with a server-assigned timestamp and ID.
	Submit(ctx context.Context, req *entity.ContactRequest) (*entity.ContactRequest, error)

	// List returns all contact requests, newest first.
	List(ctx context.Context) ([]*entity.ContactRequest, error)

	// MarkRead toggles the read flag on one request.
	MarkRead(ctx context.Context, id string, read bool) error

	// Delete removes one request.
	Delete(ctx context.Context, id string) error
}
