package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

func init() {
	Register("memory", newMemoryCache)
}

// memoryCache wraps hashicorp/golang-lru/v2/expirable to implement the Cache
// interface. Operations are purely in-process and never fail, so the context
// is accepted for interface symmetry and otherwise ignored.
type memoryCache struct {
	inner *lru.LRU[string, []byte]
}

func newMemoryCache(cfg ProviderConfig) (Cache, error) {
	var onEvict func(string, []byte)
	if cfg.OnEvict != nil {
		onEvict = func(key string, value []byte) {
			cfg.OnEvict(key, value)
		}
	}
	return &memoryCache{
		inner: lru.NewLRU[string, []byte](cfg.Size, onEvict, cfg.TTL),
	}, nil
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := m.inner.Get(key)
	return value, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte) error {
	m.inner.Add(key, value)
	return nil
}

func (m *memoryCache) Delete(_ context.Context, key string) (bool, error) {
	return m.inner.Remove(key), nil
}

func (m *memoryCache) Len(_ context.Context) (int, error) {
	return m.inner.Len(), nil
}

func (m *memoryCache) Close() error {
	return nil
}
