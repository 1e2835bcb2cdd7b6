package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/store"
	"github.com/levelupgamer/lu/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The pool is limited to one connection so every query sees the same database.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// NewTestStore returns a Store backed by NewTestDB.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedProducts upserts products into s.
func SeedProducts(t *testing.T, s *store.Store, products ...domain.Product) {
	t.Helper()
	require.NoError(t, s.UpsertProducts(products), "failed to seed products")
}

// SeedEvents inserts events into s and returns them with their assigned IDs.
func SeedEvents(t *testing.T, s *store.Store, events ...domain.Event) []domain.Event {
	t.Helper()

	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		require.NoError(t, s.InsertEvent(&e), "failed to seed event: %+v", e)
		out = append(out, e)
	}
	return out
}

// sharedStore ignores Close so several actions can run against one test database.
type sharedStore struct {
	*store.Store
}

func (sharedStore) Close() error { return nil }

// StoreOpener returns an OpenStore function that always hands out s.
// The database itself is closed when the test finishes.
func StoreOpener(s *store.Store) func() (domain.Store, error) {
	return func() (domain.Store, error) {
		return sharedStore{Store: s}, nil
	}
}
