package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// snapshotKey is the single row under which the whole snapshot lives.
const snapshotKey = "state"

// SQLiteSnapshotStore implements SnapshotStore on a SQLite key-value table.
type SQLiteSnapshotStore struct {
	db *sql.DB
}

// NewSQLiteSnapshotStore creates a new SQLiteSnapshotStore.
func NewSQLiteSnapshotStore(db *sql.DB) *SQLiteSnapshotStore {
	return &SQLiteSnapshotStore{db: db}
}

func (r *SQLiteSnapshotStore) Load(ctx context.Context) (domain.Snapshot, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM snapshots WHERE key = ?`, snapshotKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}
	s, err := DecodeSnapshot(value)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return s, nil
}

func (r *SQLiteSnapshotStore) Save(ctx context.Context, s domain.Snapshot) error {
	value, err := EncodeSnapshot(s)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	query := `INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, snapshotKey, value,
		time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
