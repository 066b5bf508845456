// Package store keeps the invocation history in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/shellshell/internal/store/migrations"
)

const memoryPath = ":memory:"

// DefaultBusyTimeout is how long a writer waits for another process holding
// the database.
const DefaultBusyTimeout = 5 * time.Second

// Store implements domain.HistoryStore.
type Store struct {
	db   *sql.DB
	path string
}

type openConfig struct {
	busyTimeout time.Duration
	migrator    *migrations.Migrator
}

// Option configures New.
type Option func(*openConfig)

// WithBusyTimeout overrides DefaultBusyTimeout.
func WithBusyTimeout(d time.Duration) Option {
	return func(c *openConfig) { c.busyTimeout = d }
}

// WithMigrator replaces the embedded schema.
func WithMigrator(m *migrations.Migrator) Option {
	return func(c *openConfig) { c.migrator = m }
}

// New opens the database at path, or an in-memory one for ":memory:",
// and brings its schema up to date.
func New(path string, opts ...Option) (*Store, error) {
	cfg := openConfig{busyTimeout: DefaultBusyTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.migrator == nil {
		cfg.migrator = migrations.Default()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	ctx := context.Background()
	if err := prepare(ctx, db, path, cfg); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, path: path}, nil
}

func prepare(ctx context.Context, db *sql.DB, path string, cfg openConfig) error {
	// Pooled connections to :memory: would each see an empty database.
	if path == memoryPath {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	pragmas := []string{fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.busyTimeout.Milliseconds())}
	if path != memoryPath {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("configure database: %w", err)
		}
	}

	if path != memoryPath {
		for _, f := range []string{path, path + "-wal", path + "-shm"} {
			_ = os.Chmod(f, 0o600)
		}
	}

	if _, err := cfg.migrator.Up(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// NewWithDB wraps a connection whose schema is already current.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Path returns the database file, or "" for stores built with NewWithDB.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
