package impl

import (
	"context"
	"testing"
	"time"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInboxService_Submit(t *testing.T) {
	repo := new(mockInboxRepo)
	svc := NewInboxService(repo, discardLogger())

	req := &entity.ContactRequest{Name: "Alice", Email: "alice@example.com", Message: "hi"}
	stored := &entity.ContactRequest{ID: "r1", Name: "Alice", Email: "alice@example.com", Message: "hi", Timestamp: time.Now()}
	repo.On("Add", mock.Anything, req).Return(stored, nil)

	got, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "r1", got.ID)
}

func TestInboxService_Submit_StorageFailure(t *testing.T) {
	repo := new(mockInboxRepo)
	svc := NewInboxService(repo, discardLogger())
	repo.On("Add", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	_, err := svc.Submit(context.Background(), &entity.ContactRequest{Name: "A"})
	assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
}

func TestInboxService_MarkRead_NotFound(t *testing.T) {
	repo := new(mockInboxRepo)
	svc := NewInboxService(repo, discardLogger())
	repo.On("SetRead", mock.Anything, "missing", true).Return(repository.ErrRequestNotFound)

	err := svc.MarkRead(context.Background(), "missing", true)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestInboxService_Delete_NotFound(t *testing.T) {
	repo := new(mockInboxRepo)
	svc := NewInboxService(repo, discardLogger())
	repo.On("Delete", mock.Anything, "missing").Return(repository.ErrRequestNotFound)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestNoteService_Add_RejectsBlankMessage(t *testing.T) {
	repo := new(mockNoteRepo)
	svc := NewNoteService(repo, discardLogger())

	_, err := svc.Add(context.Background(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrMissingField)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNoteService_Add(t *testing.T) {
	repo := new(mockNoteRepo)
	svc := NewNoteService(repo, discardLogger())

	stored := &entity.Note{ID: "n1", Message: "trimmed", Timestamp: time.Now()}
	repo.On("Add", mock.Anything, mock.MatchedBy(func(note *entity.Note) bool {
		return note.Message == "trimmed"
	})).Return(stored, nil)

	got, err := svc.Add(context.Background(), "  trimmed  ")
	require.NoError(t, err)
	assert.Equal(t, "n1", got.ID)
}

func TestNoteService_Delete_NotFound(t *testing.T) {
	repo := new(mockNoteRepo)
	svc := NewNoteService(repo, discardLogger())
	repo.On("Delete", mock.Anything, "missing").Return(repository.ErrNoteNotFound)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}
