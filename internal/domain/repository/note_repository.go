package repository

import (
	"context"
	"errors"

	"folio/internal/domain/entity"
)

// ErrNoteNotFound is returned when a note is not found.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository persists admin self-notes. Deletion filters by ID value,
// never by index, so surviving notes keep their IDs and relative order.
type NoteRepository interface {
	// Add persists a new note and returns it with its assigned ID.
	Add(ctx context.Context, note *entity.Note) (*entity.Note, error)

	// List returns all notes, newest first.
	List(ctx context.Context) ([]*entity.Note, error)

	// Delete removes one note.
	Delete(ctx context.Context, id string) error
}
