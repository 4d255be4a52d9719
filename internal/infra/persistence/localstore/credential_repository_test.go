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

func TestCredentialRepository_SaveAndFind(t *testing.T) {
	repo := NewCredentialRepository(newTestStore(t))
	ctx := context.Background()

	cred := &entity.AdminCredential{
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$fakedhashforthetestonly",
		UpdatedAt:    time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, cred))

	found, err := repo.Find(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, cred, found)
}

func TestCredentialRepository_Find_NotFound(t *testing.T) {
	repo := NewCredentialRepository(newTestStore(t))

	_, err := repo.Find(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}

func TestCredentialRepository_Save_Replaces(t *testing.T) {
	repo := NewCredentialRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.AdminCredential{Email: "admin@example.com", PasswordHash: "old"}))
	require.NoError(t, repo.Save(ctx, &entity.AdminCredential{Email: "admin@example.com", PasswordHash: "new"}))

	found, err := repo.Find(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new", found.PasswordHash)
}

func TestCredentialRepository_Rename(t *testing.T) {
	repo := NewCredentialRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.AdminCredential{Email: "old@example.com", PasswordHash: "hash"}))
	renamed := &entity.AdminCredential{Email: "new@example.com", PasswordHash: "rehashed"}
	require.NoError(t, repo.Rename(ctx, "old@example.com", renamed))

	_, err := repo.Find(ctx, "old@example.com")
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)

	// The rename writes the new record's contents in the same operation.
	found, err := repo.Find(ctx, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", found.Email)
	assert.Equal(t, "rehashed", found.PasswordHash)
}

func TestCredentialRepository_Rename_TargetTaken(t *testing.T) {
	repo := NewCredentialRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.AdminCredential{Email: "a@example.com", PasswordHash: "ha"}))
	require.NoError(t, repo.Save(ctx, &entity.AdminCredential{Email: "b@example.com", PasswordHash: "hb"}))

	err := repo.Rename(ctx, "a@example.com", &entity.AdminCredential{Email: "b@example.com", PasswordHash: "ha"})
	assert.ErrorIs(t, err, repository.ErrCredentialExists)

	// Source is untouched after the failed rename.
	found, err := repo.Find(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ha", found.PasswordHash)
}

func TestCredentialRepository_Rename_SourceMissing(t *testing.T) {
	repo := NewCredentialRepository(newTestStore(t))

	err := repo.Rename(context.Background(), "ghost@example.com", &entity.AdminCredential{Email: "new@example.com"})
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}
