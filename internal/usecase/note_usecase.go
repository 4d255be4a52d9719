package usecase

import (
	"context"

	"folio/internal/domain/entity"
)

// NoteUsecase defines the interface for admin self-notes.
type NoteUsecase interface {
	// Add records a new note with a server-assigned timestamp and ID.
	Add(ctx context.Context, message string) (*entity.Note, error)

	// List returns all notes, newest first.
	List(ctx context.Context) ([]*entity.Note, error)

	// Delete removes one note.
	Delete(ctx context.Context, id string) error
}
