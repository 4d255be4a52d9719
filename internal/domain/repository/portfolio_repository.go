// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"folio/internal/domain/entity"
)

// Domain-specific errors for portfolio persistence.
var (
	// ErrWatchUnsupported is returned by Subscribe on backends without push
	// updates; callers must re-Load after each mutation instead.
	ErrWatchUnsupported = errors.New("storage backend does not support push updates")
)

// Unsubscribe tears down an active subscription. Calling it more than once
// is harmless.
type Unsubscribe func()

// PortfolioRepository abstracts over where the portfolio document lives so
// the rest of the application is backend-agnostic.
type PortfolioRepository interface {
	// Load returns the current document, seeding and persisting the default
	// document when none exists. A malformed stored document is treated the
	// same as an absent one.
	Load(ctx context.Context) (*entity.PortfolioDocument, error)

	// Save replaces the entire document. Remote backends merge-write
	// (unspecified fields untouched); the local backend overwrites.
	Save(ctx context.Context, doc *entity.PortfolioDocument) error

	// PatchField updates a single top-level field without re-sending the
	// whole document. Backends without native field updates fall back to
	// read-modify-write.
	PatchField(ctx context.Context, field string, value any) error

	// Subscribe registers a callback invoked once immediately with the
	// current document and again on every subsequent change. Backends
	// without push updates return ErrWatchUnsupported.
	Subscribe(ctx context.Context, onChange func(*entity.PortfolioDocument)) (Unsubscribe, error)
}
