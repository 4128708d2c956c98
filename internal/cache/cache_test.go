// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"marketsite/internal/content"
)

// SnapshotCache is the store's LocalCache.
var _ content.LocalCache = (*SnapshotCache)(nil)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, responseKeyPrefix+"*").Result()
		keys = append(keys, "test:snapshot")
		client.Del(ctx, keys...)
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(host, port, "")
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestDisabledCachesAreNoOps(t *testing.T) {
	ctx := context.Background()

	var nilCache *ResponseCache
	for name, rc := range map[string]*ResponseCache{"nil": nilCache, "nil client": NewResponseCache(nil, 0)} {
		t.Run(name, func(t *testing.T) {
			if rc.Enabled() {
				t.Error("expected disabled cache")
			}
			rc.Set(ctx, "/api/faqs", []byte("[]"))
			if _, ok := rc.Get(ctx, "/api/faqs"); ok {
				t.Error("disabled cache returned a hit")
			}
			rc.Invalidate(ctx, "/api/faqs")
			rc.InvalidateAll(ctx)
		})
	}

	sc := NewSnapshotCache(nil, "")
	if err := sc.SaveSnapshot(ctx, []byte("{}")); err != nil {
		t.Errorf("SaveSnapshot: %v", err)
	}
	if data, err := sc.LoadSnapshot(ctx); data != nil || err != nil {
		t.Errorf("LoadSnapshot: got %q, %v", data, err)
	}
	if err := sc.ClearSnapshot(ctx); err != nil {
		t.Errorf("ClearSnapshot: %v", err)
	}
}

func TestNewResponseCacheDefaultTTL(t *testing.T) {
	rc := NewResponseCache(nil, 0)
	if rc.ttl != DefaultResponseTTL {
		t.Errorf("ttl: got %v, want %v", rc.ttl, DefaultResponseTTL)
	}
	if key := NewSnapshotCache(nil, "").key; key != DefaultSnapshotKey {
		t.Errorf("snapshot key: got %q, want %q", key, DefaultSnapshotKey)
	}
}

func TestResponseCacheSetAndGet(t *testing.T) {
	rc := NewResponseCache(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	if data, ok := rc.Get(ctx, "/api/pricing/ai"); ok || data != nil {
		t.Error("expected cache miss")
	}

	body := []byte(`{"id":"ai"}`)
	rc.Set(ctx, "/api/pricing/ai", body)

	data, ok := rc.Get(ctx, "/api/pricing/ai")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(data) != string(body) {
		t.Errorf("data mismatch: got %q, want %q", data, body)
	}

	rc.Invalidate(ctx, "/api/pricing/ai")
	if _, ok := rc.Get(ctx, "/api/pricing/ai"); ok {
		t.Error("expected cache miss after invalidation")
	}
}

func TestResponseCacheInvalidateAll(t *testing.T) {
	rc := NewResponseCache(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	keys := []string{"/api/homepage", "/api/faqs", "/api/blog"}
	for _, k := range keys {
		rc.Set(ctx, k, []byte("x"))
	}
	rc.InvalidateAll(ctx)

	for _, k := range keys {
		if _, ok := rc.Get(ctx, k); ok {
			t.Errorf("expected miss for %q after InvalidateAll", k)
		}
	}
}

func TestSnapshotCacheRoundTrip(t *testing.T) {
	sc := NewSnapshotCache(testValkeyClient(t), "test:snapshot")
	ctx := context.Background()

	if data, err := sc.LoadSnapshot(ctx); err != nil || data != nil {
		t.Fatalf("empty LoadSnapshot: got %q, %v", data, err)
	}
	if err := sc.SaveSnapshot(ctx, []byte(`{"faqs":[]}`)); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	data, err := sc.LoadSnapshot(ctx)
	if err != nil || string(data) != `{"faqs":[]}` {
		t.Errorf("LoadSnapshot: got %q, %v", data, err)
	}
	if err := sc.ClearSnapshot(ctx); err != nil {
		t.Fatalf("ClearSnapshot: %v", err)
	}
	if data, _ := sc.LoadSnapshot(ctx); data != nil {
		t.Error("snapshot still present after clear")
	}
}
