package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// defaultKeyPrefix namespaces all keys in Redis so the store can share a
	// database with other applications.
	defaultKeyPrefix = "renamed:"

	// opTimeout bounds every Redis round trip, on top of whatever deadline
	// the caller's context already carries.
	opTimeout = 2 * time.Second

	// scanBatchSize is the COUNT hint passed to SCAN when sizing the namespace.
	scanBatchSize = 100
)

func init() {
	Register("redis", newRedisCache)
}

// redisCache implements the Cache interface using Redis/Valkey with one
// plain string key per entry. Entries expire server-side via per-key TTL,
// so OnEvict is never invoked and Size is not enforced: capacity bounding
// is delegated to the Redis memory policy.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func newRedisCache(cfg ProviderConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Verify connectivity.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &redisCache{
		client: client,
		ttl:    cfg.TTL,
		prefix: defaultKeyPrefix,
	}, nil
}

func (r *redisCache) key(key string) string {
	return r.prefix + key
}

func (r *redisCache) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

func (r *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	value, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		// redis.Nil means the key doesn't exist, which is a normal miss.
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	return r.client.Set(ctx, r.key(key), value, r.ttl).Err()
}

func (r *redisCache) Delete(ctx context.Context, key string) (bool, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	removed, err := r.client.Del(ctx, r.key(key)).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}

func (r *redisCache) Len(ctx context.Context) (int, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var (
		cursor uint64
		count  int
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", scanBatchSize).Result()
		if err != nil {
			return 0, err
		}
		count += len(keys)
		cursor = next
		if cursor == 0 {
			return count, nil
		}
	}
}

func (r *redisCache) Close() error {
	return r.client.Close()
}
