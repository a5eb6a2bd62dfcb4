package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shipment-market/internal/features/marketplace/domain"

	"github.com/redis/go-redis/v9"
)

// snapshotKey is the fixed key the marketplace image lives under.
const snapshotKey = "marketplace_snapshot"

// RedisSnapshotStore implements ports.SnapshotStore, persisting the
// marketplace image as one JSON blob in Redis. The snapshot has no TTL: it
// lives until the next save overwrites it.
type RedisSnapshotStore struct {
	client *redis.Client
}

// NewRedisSnapshotStore connects to Redis at the given URL, in the format
// redis://[:password@]host[:port][/database], and verifies reachability.
func NewRedisSnapshotStore(ctx context.Context, redisURL string) (*RedisSnapshotStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisSnapshotStore{client: client}, nil
}

// Save overwrites the stored snapshot.
func (r *RedisSnapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := r.client.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// Load returns the stored snapshot, or (nil, nil) when none was ever saved.
func (r *RedisSnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	data, err := r.client.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}

// Close closes the Redis connection.
func (r *RedisSnapshotStore) Close() error {
	return r.client.Close()
}
