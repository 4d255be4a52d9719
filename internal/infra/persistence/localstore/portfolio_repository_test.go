package localstore

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"folio/config"
	"folio/internal/domain/entity"
	"folio/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const testPlaceholder = "https://placehold.co/400x400"

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)

	return NewWithDB(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestPortfolioRepo(t *testing.T) (repository.PortfolioRepository, *Store) {
	t.Helper()

	store := newTestStore(t)
	cfg := &config.Config{}
	cfg.Site.PlaceholderImage = testPlaceholder

	return NewPortfolioRepository(store, cfg, slog.New(slog.NewTextHandler(io.Discard, nil))), store
}

func TestPortfolioRepository_Load_SeedsDefaults(t *testing.T) {
	repo, store := newTestPortfolioRepo(t)
	ctx := context.Background()

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, doc.Projects)
	assert.Empty(t, doc.Projects)
	assert.Equal(t, testPlaceholder, doc.ProfileImage)

	// Seeding persists immediately.
	_, ok, err := store.Get(ctx, KeyPortfolio)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPortfolioRepository_SaveLoad_RoundTrip(t *testing.T) {
	repo, _ := newTestPortfolioRepo(t)
	ctx := context.Background()

	doc := entity.DefaultDocument(testPlaceholder)
	doc.About = "Full stack developer."
	doc.Contact = entity.ContactInfo{Email: "owner@example.com", GitHub: "https://github.com/owner"}
	doc.Projects = []entity.Project{
		{
			Name:        "Threat Dashboard",
			Description: "Realtime SIEM overview",
			Category:    entity.CategoryCybersecurity,
			Images:      []string{"https://example.com/shot.png"},
			TechUsed:    []string{"Go", "Firestore"},
			LiveLink:    "https://dash.example.com",
		},
	}
	doc.Skills = map[string][]entity.Skill{
		"Backend": {{Name: "Go", Level: 90}, {Name: "SQL", Level: 70}},
	}
	doc.Achievements = []string{"Dean's list", "CTF finalist"}
	doc.ProfileImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg=="

	require.NoError(t, repo.Save(ctx, doc))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestPortfolioRepository_Load_MalformedTreatedAsAbsent(t *testing.T) {
	repo, store := newTestPortfolioRepo(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, KeyPortfolio, "{not json"))

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testPlaceholder, doc.ProfileImage)

	// The reseeded default replaced the malformed value.
	raw, ok, err := store.Get(ctx, KeyPortfolio)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, "{not json", raw)
}

func TestPortfolioRepository_Load_MigratesLegacySkillStrings(t *testing.T) {
	repo, store := newTestPortfolioRepo(t)
	ctx := context.Background()

	legacy := `{"about":"hi","skills":{"Languages":["Go","Python"]}}`
	require.NoError(t, store.Put(ctx, KeyPortfolio, legacy))

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Skills["Languages"], 2)
	assert.Equal(t, "Go", doc.Skills["Languages"][0].Name)
	assert.Equal(t, 50, doc.Skills["Languages"][0].Level)
}

func TestPortfolioRepository_PatchField(t *testing.T) {
	repo, _ := newTestPortfolioRepo(t)
	ctx := context.Background()

	doc := entity.DefaultDocument(testPlaceholder)
	doc.About = "original about"
	require.NoError(t, repo.Save(ctx, doc))

	require.NoError(t, repo.PatchField(ctx, "profileImage", "https://example.com/me.png"))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/me.png", loaded.ProfileImage)
	// Other fields survive the patch.
	assert.Equal(t, "original about", loaded.About)
}

func TestPortfolioRepository_Subscribe_Unsupported(t *testing.T) {
	repo, _ := newTestPortfolioRepo(t)

	_, err := repo.Subscribe(context.Background(), func(*entity.PortfolioDocument) {})
	assert.ErrorIs(t, err, repository.ErrWatchUnsupported)
}
