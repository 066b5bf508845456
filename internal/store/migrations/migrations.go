// Package migrations applies the numbered SQL files of the history schema.
// Files are named NN_description.sql and run once each, in version order,
// each inside its own transaction.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var embedded embed.FS

// Migration is one schema step.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

func (m Migration) String() string {
	return fmt.Sprintf("%02d_%s", m.Version, m.Description)
}

const createSchemaTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Migrator applies the migrations found in a file system.
type Migrator struct {
	fsys fs.FS
}

// New returns a Migrator reading *.sql files from the root of fsys.
func New(fsys fs.FS) *Migrator {
	return &Migrator{fsys: fsys}
}

// Default returns the Migrator for the embedded history schema.
func Default() *Migrator {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		panic(err)
	}
	return New(sub)
}

// Run applies the embedded migrations that db has not seen yet.
func Run(db *sql.DB) error {
	_, err := Default().Up(context.Background(), db)
	return err
}

// Load returns the migrations sorted by version. Two files with the same
// version are an error.
func (m *Migrator) Load() ([]Migration, error) {
	names, err := fs.Glob(m.fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	all := make([]Migration, 0, len(names))
	for _, name := range names {
		version, description, err := ParseFilename(path.Base(name))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		content, err := fs.ReadFile(m.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		all = append(all, Migration{Version: version, Description: description, SQL: string(content)})
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Version < all[j].Version })
	for i := 1; i < len(all); i++ {
		if all[i].Version == all[i-1].Version {
			return nil, fmt.Errorf("duplicate version %d: %s and %s", all[i].Version, all[i-1].Description, all[i].Description)
		}
	}
	return all, nil
}

// ParseFilename extracts version and description from "NN_description.sql".
func ParseFilename(name string) (int, string, error) {
	prefix, description, ok := strings.Cut(strings.TrimSuffix(name, ".sql"), "_")
	if !ok || description == "" {
		return 0, "", fmt.Errorf("invalid format, expected NN_description.sql")
	}
	version, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, "", fmt.Errorf("invalid version number: %w", err)
	}
	if version <= 0 {
		return 0, "", fmt.Errorf("version must be positive, got %d", version)
	}
	return version, description, nil
}

// Up applies every pending migration and returns how many ran. It stops at
// the first failure; earlier migrations stay applied.
func (m *Migrator) Up(ctx context.Context, db *sql.DB) (int, error) {
	pending, err := m.Pending(ctx, db)
	if err != nil {
		return 0, err
	}
	for i, mig := range pending {
		if err := apply(ctx, db, mig); err != nil {
			return i, fmt.Errorf("migration %s: %w", mig, err)
		}
	}
	return len(pending), nil
}

// Pending returns the migrations newer than the applied version.
func (m *Migrator) Pending(ctx context.Context, db *sql.DB) ([]Migration, error) {
	all, err := m.Load()
	if err != nil {
		return nil, err
	}
	current, err := Version(ctx, db)
	if err != nil {
		return nil, err
	}

	var pending []Migration
	for _, mig := range all {
		if mig.Version > current {
			pending = append(pending, mig)
		}
	}
	return pending, nil
}

// Version returns the highest applied version, 0 for a fresh database.
func Version(ctx context.Context, db *sql.DB) (int, error) {
	if _, err := db.ExecContext(ctx, createSchemaTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	var version sql.NullInt64
	if err := db.QueryRowContext(ctx, "SELECT MAX(version) FROM schema_migrations").Scan(&version); err != nil {
		return 0, fmt.Errorf("get current version: %w", err)
	}
	return int(version.Int64), nil
}

func apply(ctx context.Context, db *sql.DB, m Migration) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, m.SQL); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
		m.Version, m.Description,
	); err != nil {
		return fmt.Errorf("record migration: %w", err)
	}
	return tx.Commit()
}
