package store

import (
	"context"
	"errors"

	"github.com/alexanderramin/cadence/internal/domain"
)

// ErrNoSnapshot is returned by Load when the store holds no snapshot.
var ErrNoSnapshot = errors.New("no persisted snapshot")

// SnapshotStore persists the full snapshot under a single key. The engine
// loads once at startup and saves after every committed transition.
type SnapshotStore interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, s domain.Snapshot) error
}
