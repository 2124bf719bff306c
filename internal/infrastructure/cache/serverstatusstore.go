package cache

import (
	"context"
	"sync"

	"leafsmp/internal/domain/serverstatus"
)

// MemorySnapshotStore holds the server status snapshot for a single process.
type MemorySnapshotStore struct {
	mu       sync.RWMutex
	snapshot *serverstatus.Snapshot
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{}
}

func (s *MemorySnapshotStore) Get(ctx context.Context) (*serverstatus.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone(), nil
}

func (s *MemorySnapshotStore) Set(ctx context.Context, snapshot *serverstatus.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot.Clone()
	return nil
}
