package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"leafsmp/internal/domain/serverstatus"
	"leafsmp/internal/shared/constants"
)

// RedisSnapshotStore shares one last-known-good snapshot between instances.
// The key never expires; a stale snapshot beats none.
type RedisSnapshotStore struct {
	client *redis.Client
	key    string
}

func NewRedisSnapshotStore(client *redis.Client) *RedisSnapshotStore {
	return &RedisSnapshotStore{
		client: client,
		key:    constants.RedisKeyServerStatus,
	}
}

func (s *RedisSnapshotStore) Get(ctx context.Context) (*serverstatus.Snapshot, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get server status: %w", err)
	}

	var snapshot serverstatus.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal server status: %w", err)
	}
	return &snapshot, nil
}

func (s *RedisSnapshotStore) Set(ctx context.Context, snapshot *serverstatus.Snapshot) error {
	if snapshot == nil {
		return errors.New("snapshot cannot be nil")
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal server status: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store server status: %w", err)
	}
	return nil
}
