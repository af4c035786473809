package cache

import "context"

// EvictCallback is called when an entry is evicted from the cache.
// Not all providers support eviction callbacks (e.g., Redis relies on server-side TTL expiry).
type EvictCallback func(key string, value []byte)

// Logger receives error reports from the instrumented cache wrapper.
type Logger interface {
	Error(msg string, err error)
}

// Cache defines the interface for the key-value store backing user settings.
// Implementations may use in-memory storage or external backends like Redis/Valkey.
// Unlike a best-effort cache, operations report backend failures to the caller:
// the settings layer decides whether to fall back or surface the error.
type Cache interface {
	// Get retrieves a value by key. The boolean reports whether the key was
	// present; a backend failure is returned as an error with found=false.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given key. If the key already exists, it is overwritten.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key and reports whether it was present.
	Delete(ctx context.Context, key string) (bool, error)

	// Len returns the number of entries currently stored.
	// For external backends like Redis, only keys in this cache's namespace count.
	Len(ctx context.Context) (int, error)

	// Close releases any resources held by the cache (e.g., network connections).
	// For in-memory caches, this is a no-op.
	Close() error
}
