package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/footprint-tools/shellshell/internal/domain"
)

// createdAtLayout has a fixed-width fraction so the text column sorts in
// time order.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Record stores an invocation. A missing ID or timestamp is filled in.
func (s *Store) Record(inv domain.Invocation) error {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now()
	}
	if inv.Status == "" {
		inv.Status = domain.InvocationSucceeded
	}

	args := inv.Args
	if args == nil {
		args = []string{}
	}
	encoded, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode args: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO invocations (id, command, args, status, error, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.ID,
		inv.Command,
		string(encoded),
		string(inv.Status),
		inv.Error,
		inv.Duration.Milliseconds(),
		inv.CreatedAt.UTC().Format(createdAtLayout),
	)
	return err
}

// Recent returns at most limit invocations, newest first. A limit of zero
// or less returns every invocation.
func (s *Store) Recent(limit int) ([]domain.Invocation, error) {
	query := `
		SELECT id, command, args, status, error, duration_ms, created_at
		FROM invocations
		ORDER BY created_at DESC, rowid DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Invocation
	for rows.Next() {
		inv, err := scanInvocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}

	return out, rows.Err()
}

// Clear deletes every invocation and returns how many were removed.
func (s *Store) Clear() (int64, error) {
	result, err := s.db.Exec("DELETE FROM invocations")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanInvocation(rows *sql.Rows) (domain.Invocation, error) {
	var (
		inv        domain.Invocation
		args       string
		status     string
		durationMs int64
		createdAt  string
	)

	if err := rows.Scan(&inv.ID, &inv.Command, &args, &status, &inv.Error, &durationMs, &createdAt); err != nil {
		return domain.Invocation{}, err
	}

	if err := json.Unmarshal([]byte(args), &inv.Args); err != nil {
		return domain.Invocation{}, fmt.Errorf("decode args of %s: %w", inv.ID, err)
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return domain.Invocation{}, err
	}

	inv.Status = domain.InvocationStatus(status)
	inv.Duration = time.Duration(durationMs) * time.Millisecond
	inv.CreatedAt = t

	return inv, nil
}

// Verify Store implements domain.HistoryStore
var _ domain.HistoryStore = (*Store)(nil)
