package cache

import "context"

// instrumentedCache wraps a Cache and automatically records Prometheus
// metrics for hits, misses, writes, deletes, backend errors and current
// entry count under the given group label. All metric tracking lives in the
// cache layer so callers do not need to manage it.
type instrumentedCache struct {
	inner  Cache
	group  string
	logger Logger
}

// newInstrumentedCache wraps inner with metric instrumentation for the given
// group. A lazy entries collector is registered that queries inner.Len() at
// scrape time, which is correct for backends (e.g., Redis) where TTL expiry
// removes entries outside the application's control.
func newInstrumentedCache(inner Cache, group string, logger Logger) *instrumentedCache {
	registerEntriesCollector(group, func() int {
		n, err := inner.Len(context.Background())
		if err != nil {
			return 0
		}
		return n
	})
	return &instrumentedCache{inner: inner, group: group, logger: logger}
}

func (c *instrumentedCache) logError(msg string, err error) {
	if c.logger != nil {
		c.logger.Error(msg, err)
	}
}

func (c *instrumentedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, ok, err := c.inner.Get(ctx, key)
	if err != nil {
		ErrorsTotal.WithLabelValues(c.group, "get").Inc()
		c.logError("cache Get failed", err)
		return nil, false, err
	}
	if ok {
		HitsTotal.WithLabelValues(c.group).Inc()
	} else {
		MissesTotal.WithLabelValues(c.group).Inc()
	}
	return value, ok, nil
}

func (c *instrumentedCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.inner.Set(ctx, key, value); err != nil {
		ErrorsTotal.WithLabelValues(c.group, "set").Inc()
		c.logError("cache Set failed", err)
		return err
	}
	SetsTotal.WithLabelValues(c.group).Inc()
	return nil
}

func (c *instrumentedCache) Delete(ctx context.Context, key string) (bool, error) {
	removed, err := c.inner.Delete(ctx, key)
	if err != nil {
		ErrorsTotal.WithLabelValues(c.group, "delete").Inc()
		c.logError("cache Delete failed", err)
		return false, err
	}
	if removed {
		DeletesTotal.WithLabelValues(c.group).Inc()
	}
	return removed, nil
}

func (c *instrumentedCache) Len(ctx context.Context) (int, error) {
	return c.inner.Len(ctx)
}

// Close unregisters the entries collector and closes the underlying cache.
func (c *instrumentedCache) Close() error {
	unregisterEntriesCollector(c.group)
	return c.inner.Close()
}
