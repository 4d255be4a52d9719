// Package localstore is the local storage backend: a durable key-value
// store backed by SQLite, holding each logical document as one JSON value
// under one key. There is no push-update support; callers re-read after
// mutations.
package localstore

import (
	"context"
	"database/sql"
	"log/slog"

	"folio/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

// Store keys for the persisted documents. These mirror the two top-level
// browser-storage keys of the original deployment layout.
const (
	KeyPortfolio   = "portfolio"
	KeyNotes       = "notes"
	KeyInbox       = "contact_requests"
	KeyCredentials = "credentials"
)

// Store is a SQLite-backed key-value store.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Params holds dependencies for the Store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens (or creates) the store at the configured path.
func New(params Params) (*Store, error) {
	path := params.Config.Storage.Local.Path
	if path == "" {
		path = "folio.db"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open local store")
	}

	// The store is effectively single-writer; one connection avoids
	// SQLITE_BUSY on concurrent requests.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "failed to create kv table")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing local store")

			return errors.WithStack(db.Close())
		},
	})

	return &Store{db: db, logger: params.Logger}, nil
}

// NewWithDB wraps an already-open database. Used by tests.
func NewWithDB(db *sql.DB, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Get returns the value stored under key and whether it exists.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to read key %s", key)
	}

	return value, true, nil
}

// Put overwrites the value stored under key. Every mutation is a full
// re-serialize-and-write; there is no batching.
func (s *Store) Put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)

	return errors.Wrapf(err, "failed to write key %s", key)
}
