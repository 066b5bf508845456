package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/shellshell/internal/domain"
	"github.com/footprint-tools/shellshell/internal/store"
	"github.com/footprint-tools/shellshell/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")

	// Every pooled connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// NewTestStore wraps NewTestDB in a history store.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedInvocations records a slice of invocations into the store.
func SeedInvocations(t *testing.T, s domain.HistoryStore, invocations []domain.Invocation) {
	t.Helper()

	for _, inv := range invocations {
		err := s.Record(inv)
		require.NoError(t, err, "failed to seed invocation: %+v", inv)
	}
}
