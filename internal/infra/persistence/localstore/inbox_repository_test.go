package localstore

import (
	"context"
	"testing"
	"time"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addRequestAt(t *testing.T, repo repository.InboxRepository, name string, at time.Time) *entity.ContactRequest {
	t.Helper()

	req, err := repo.Add(context.Background(), &entity.ContactRequest{
		Name:      name,
		Email:     name + "@example.com",
		Subject:   "Hello",
		Message:   "I saw your portfolio",
		Timestamp: at,
	})
	require.NoError(t, err)

	return req
}

func TestInboxRepository_Add_StartsUnread(t *testing.T) {
	repo := NewInboxRepository(newTestStore(t))

	req, err := repo.Add(context.Background(), &entity.ContactRequest{
		Name:  "Alice",
		Email: "alice@example.com",
		Read:  true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	// New submissions always start unread, whatever the payload claims.
	assert.False(t, req.Read)
	assert.False(t, req.Timestamp.IsZero())
}

func TestInboxRepository_List_NewestFirst(t *testing.T) {
	repo := NewInboxRepository(newTestStore(t))
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	older := addRequestAt(t, repo, "older", base)
	newer := addRequestAt(t, repo, "newer", base.Add(time.Hour))

	requests, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, newer.ID, requests[0].ID)
	assert.Equal(t, older.ID, requests[1].ID)
}

func TestInboxRepository_SetRead(t *testing.T) {
	repo := NewInboxRepository(newTestStore(t))
	req := addRequestAt(t, repo, "alice", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	require.NoError(t, repo.SetRead(context.Background(), req.ID, true))

	requests, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.True(t, requests[0].Read)

	require.NoError(t, repo.SetRead(context.Background(), req.ID, false))

	requests, err = repo.List(context.Background())
	require.NoError(t, err)
	assert.False(t, requests[0].Read)
}

func TestInboxRepository_SetRead_NotFound(t *testing.T) {
	repo := NewInboxRepository(newTestStore(t))

	err := repo.SetRead(context.Background(), "missing", true)
	assert.ErrorIs(t, err, repository.ErrRequestNotFound)
}

func TestInboxRepository_Delete(t *testing.T) {
	repo := NewInboxRepository(newTestStore(t))
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	keep := addRequestAt(t, repo, "keep", base)
	drop := addRequestAt(t, repo, "drop", base.Add(time.Minute))

	require.NoError(t, repo.Delete(context.Background(), drop.ID))

	requests, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, keep.ID, requests[0].ID)

	err = repo.Delete(context.Background(), drop.ID)
	assert.ErrorIs(t, err, repository.ErrRequestNotFound)
}
