package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/usecase"

	"github.com/pkg/errors"
)

// noteService implements the NoteUsecase interface.
type noteService struct {
	repo   repository.NoteRepository
	logger *slog.Logger
}

// NewNoteService is the constructor for noteService.
func NewNoteService(repo repository.NoteRepository, logger *slog.Logger) usecase.NoteUsecase {
	return &noteService{
		repo:   repo,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *noteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add records a new note.
func (srv *noteService) Add(ctx context.Context, message string) (*entity.Note, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domainerrors.ErrMissingField.WithDetails("message")
	}

	note, err := srv.repo.Add(ctx, &entity.Note{Message: message})
	if err != nil {
		srv.log(ctx).Error("Failed to store note", slog.Any("error", err))

		return nil, domainerrors.ErrStorageUnavailable.WithDetails(err.Error())
	}

	return note, nil
}

// List returns all notes, newest first.
func (srv *noteService) List(ctx context.Context) ([]*entity.Note, error) {
	notes, err := srv.repo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list notes", slog.Any("error", err))

		return nil, domainerrors.ErrStorageUnavailable.WithDetails(err.Error())
	}

	return notes, nil
}

// Delete removes one note.
func (srv *noteService) Delete(ctx context.Context, id string) error {
	if err := srv.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return domainerrors.ErrItemNotFound.WithDetails("note " + id)
		}
		srv.log(ctx).Error("Failed to delete note", slog.Any("error", err), slog.String("id", id))

		return domainerrors.ErrStorageUnavailable.WithDetails(err.Error())
	}

	return nil
}
