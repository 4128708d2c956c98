// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultSnapshotKey is where the content snapshot lives.
const DefaultSnapshotKey = "marketsite:content:snapshot"

// SnapshotCache keeps the local-only content snapshot in Valkey. It never
// expires; Reset clears it.
type SnapshotCache struct {
	client *redis.Client
	key    string
}

// NewSnapshotCache creates a snapshot cache. An empty key uses
// DefaultSnapshotKey.
func NewSnapshotCache(client *redis.Client, key string) *SnapshotCache {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &SnapshotCache{client: client, key: key}
}

// LoadSnapshot returns the saved snapshot, or nil when none was saved.
func (sc *SnapshotCache) LoadSnapshot(ctx context.Context) ([]byte, error) {
	if sc.client == nil {
		return nil, nil
	}
	data, err := sc.client.Get(ctx, sc.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot get: %w", err)
	}
	return data, nil
}

// SaveSnapshot replaces the saved snapshot.
func (sc *SnapshotCache) SaveSnapshot(ctx context.Context, data []byte) error {
	if sc.client == nil {
		return nil
	}
	if err := sc.client.Set(ctx, sc.key, data, 0).Err(); err != nil {
		return fmt.Errorf("snapshot set: %w", err)
	}
	return nil
}

// ClearSnapshot deletes the saved snapshot.
func (sc *SnapshotCache) ClearSnapshot(ctx context.Context) error {
	if sc.client == nil {
		return nil
	}
	if err := sc.client.Del(ctx, sc.key).Err(); err != nil {
		return fmt.Errorf("snapshot delete: %w", err)
	}
	return nil
}
