// Package snapshot persists full store snapshots across process restarts.
// The store itself has no incremental persistence; a snapshot is always
// exported and restored as one unit.
package snapshot

import (
	"context"

	"github.com/d60-Lab/socialnet/internal/store"
)

// Backend stores and retrieves one full snapshot.
// Load returns (nil, nil) when no snapshot has been saved yet.
type Backend interface {
	Save(ctx context.Context, snap *store.Snapshot) error
	Load(ctx context.Context) (*store.Snapshot, error)
}
