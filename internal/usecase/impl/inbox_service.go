package impl

import (
	"context"
	"log/slog"

	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/usecase"

	"github.com/pkg/errors"
)

// inboxService implements the InboxUsecase interface.
type inboxService struct {
	repo   repository.InboxRepository
	logger *slog.Logger
}

// NewInboxService is the constructor for inboxService.
func NewInboxService(repo repository.InboxRepository, logger *slog.Logger) usecase.InboxUsecase {
	return &inboxService{
		repo:   repo,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *inboxService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit records a visitor contact-form submission.
func (srv *inboxService) Submit(ctx context.Context, req *entity.ContactRequest) (*entity.ContactRequest, error) {
	stored, err := srv.repo.Add(ctx, req)
	if err != nil {
		srv.log(ctx).Error("Failed to store contact request", slog.Any("error", err))

		return nil, domainerrors.ErrStorageUnavailable.WithDetails(err.Error())
	}
	srv.log(ctx).Info("Contact request received", slog.String("id", stored.ID))

	return stored, nil
}

// List returns all contact requests, newest first.
func (srv *inboxService) List(ctx context.Context) ([]*entity.ContactRequest, error) {
	requests, err := srv.repo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list contact requests", slog.Any("error", err))

		return nil, domainerrors.ErrStorageUnavailable.WithDetails(err.Error())
	}

	return requests, nil
}

// MarkRead toggles the read flag on one request.
func (srv *inboxService) MarkRead(ctx context.Context, id string, read bool) error {
	if err := srv.repo.SetRead(ctx, id, read); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrItemNotFound.WithDetails("contact request " + id)
		}
		srv.log(ctx).Error("Failed to update contact request", slog.Any("error", err), slog.String("id", id))

		return domainerrors.ErrStorageUnavailable.WithDetails(err.Error())
	}

	return nil
}

// Delete removes one request.
func (srv *inboxService) Delete(ctx context.Context, id string) error {
	if err := srv.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrItemNotFound.WithDetails("contact request " + id)
		}
		srv.log(ctx).Error("Failed to delete contact request", slog.Any("error", err), slog.String("id", id))

		return domainerrors.ErrStorageUnavailable.WithDetails(err.Error())
	}
	srv.log(ctx).Info("Contact request deleted", slog.String("id", id))

	return nil
}
