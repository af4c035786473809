package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// The redis provider speaks plain GET/SET/DEL/SCAN, so most coverage runs
// against an in-process miniredis. Tests against a real server are gated on
// REDIS_ADDRESS and skipped by default.

func newMiniRedisCache(t *testing.T, ttl time.Duration) (Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := New("redis", ProviderConfig{
		TTL:          ttl,
		RedisAddress: mr.Addr(),
	})
	if err != nil {
		t.Fatalf("New redis cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestRedisCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c, _ := newMiniRedisCache(t, time.Minute)

	val, ok, err := c.Get(ctx, "redis-test-key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("Expected miss for new key")
	}
	if val != nil {
		t.Fatalf("Expected nil value on miss, got %v", val)
	}

	if err := c.Set(ctx, "redis-test-key", []byte("hello")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, ok, err = c.Get(ctx, "redis-test-key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Expected hit after Set")
	}
	if string(val) != "hello" {
		t.Fatalf("Expected 'hello', got %q", string(val))
	}
}

func TestRedisCache_KeysAreNamespaced(t *testing.T) {
	ctx := context.Background()
	c, mr := newMiniRedisCache(t, time.Minute)

	if err := c.Set(ctx, "user:42:rename", []byte("cfg")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if !mr.Exists(defaultKeyPrefix + "user:42:rename") {
		t.Fatalf("Expected key stored under the %q prefix, server keys: %v", defaultKeyPrefix, mr.Keys())
	}
	if mr.Exists("user:42:rename") {
		t.Fatal("Raw key must not be stored without the namespace prefix")
	}
}

func TestRedisCache_Delete(t *testing.T) {
	ctx := context.Background()
	c, _ := newMiniRedisCache(t, time.Minute)

	removed, err := c.Delete(ctx, "absent")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed {
		t.Fatal("Expected Delete of absent key to report false")
	}

	_ = c.Set(ctx, "present", []byte("data"))
	removed, err = c.Delete(ctx, "present")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Fatal("Expected Delete of present key to report true")
	}
	if _, ok, _ := c.Get(ctx, "present"); ok {
		t.Fatal("Deleted key should be gone")
	}
}

func TestRedisCache_Len(t *testing.T) {
	ctx := context.Background()
	c, mr := newMiniRedisCache(t, time.Minute)

	if n, err := c.Len(ctx); err != nil || n != 0 {
		t.Fatalf("Expected Len 0 on clean server, got %d (err %v)", n, err)
	}

	_ = c.Set(ctx, "redis-len-a", []byte("1"))
	_ = c.Set(ctx, "redis-len-b", []byte("2"))

	// Keys outside the namespace must not count.
	mr.Set("unrelated", "x")

	if n, err := c.Len(ctx); err != nil || n != 2 {
		t.Fatalf("Expected Len 2, got %d (err %v)", n, err)
	}
}

func TestRedisCache_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	c, mr := newMiniRedisCache(t, time.Second)

	_ = c.Set(ctx, "ephemeral", []byte("x"))
	mr.FastForward(2 * time.Second)

	if _, ok, _ := c.Get(ctx, "ephemeral"); ok {
		t.Fatal("Expected entry to expire server-side")
	}
}

func TestRedisCache_ContextCancellation(t *testing.T) {
	c, _ := newMiniRedisCache(t, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.Set(ctx, "k", []byte("v")); err == nil {
		t.Fatal("Expected error from a canceled context")
	}
}

func TestRedisCache_Close(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := New("redis", ProviderConfig{
		TTL:          time.Minute,
		RedisAddress: mr.Addr(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Real-server integration
// ---------------------------------------------------------------------------

func skipIfNoRedis(t *testing.T) string {
	t.Helper()
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		t.Skip("Skipping Redis integration tests: set REDIS_ADDRESS to enable")
	}
	return addr
}

// flushTestRedisDB clears all data in DB 15 so tests start with a clean slate.
func flushTestRedisDB(t *testing.T, addr string) {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	defer client.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush Redis test DB: %v", err)
	}
}

func TestRedisCache_Integration_RoundTrip(t *testing.T) {
	addr := skipIfNoRedis(t)
	flushTestRedisDB(t, addr)

	ctx := context.Background()
	c, err := New("redis", ProviderConfig{
		TTL:          10 * time.Second,
		RedisAddress: addr,
		RedisDB:      15, // use a high DB number for tests
	})
	if err != nil {
		t.Fatalf("New redis cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if err := c.Set(ctx, "integration-key", []byte("hello")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, ok, err := c.Get(ctx, "integration-key")
	if err != nil || !ok || string(val) != "hello" {
		t.Fatalf("Get = (%q, %v, %v), want hit with 'hello'", val, ok, err)
	}

	if n, err := c.Len(ctx); err != nil || n != 1 {
		t.Fatalf("Len = %d (err %v), want 1", n, err)
	}

	if removed, err := c.Delete(ctx, "integration-key"); err != nil || !removed {
		t.Fatalf("Delete = (%v, %v), want (true, nil)", removed, err)
	}
}
