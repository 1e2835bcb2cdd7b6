package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/log"
	"github.com/levelupgamer/lu/internal/store/migrations"
)

// timeLayout is used for every timestamp column. Values are stored in UTC so
// text ordering matches chronological ordering.
const timeLayout = time.RFC3339

// Store wraps a SQLite database connection.
// It implements domain.Store.
type Store struct {
	db   *sql.DB
	path string
	feed *Feed

	stopPoll context.CancelFunc
	pollDone sync.WaitGroup
}

// New opens the database at path, runs migrations and starts watching for
// commits made by other processes.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if isMemory(path) {
		db.SetMaxOpenConns(1)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	s := &Store{db: db, path: path, feed: NewFeed()}

	if !isMemory(path) {
		ctx, cancel := context.WithCancel(context.Background())
		s.stopPoll = cancel
		s.pollDone.Add(1)
		go func() {
			defer s.pollDone.Done()
			s.pollDataVersion(ctx)
		}()
	}

	log.Debug("store: opened %s", path)
	return s, nil
}

// NewWithDB creates a Store from an existing, migrated database connection.
// No cross-process poller is started.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, feed: NewFeed()}
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Feed returns the change feed used by the live queries.
func (s *Store) Feed() *Feed {
	return s.feed
}

// Close stops the poller and closes the database connection.
func (s *Store) Close() error {
	if s.stopPoll != nil {
		s.stopPoll()
		s.pollDone.Wait()
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func dsn(path string) string {
	if isMemory(path) {
		return "file::memory:?_foreign_keys=on"
	}
	// writers take the lock at BEGIN so the busy timeout covers contention
	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate"
}

func isMemory(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

// setDBPermissions sets restrictive file permissions on the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if isMemory(path) {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// withTx runs fn in a transaction, committing when it returns nil.
func (s *Store) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// storedTime is t as it reads back from a timestamp column.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// now is replaced in tests.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

var _ domain.Store = (*Store)(nil)
