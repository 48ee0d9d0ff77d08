package cache

import (
	"context"
	"errors"
	"time"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Service defines cache operations. Values are stored as JSON so the memory
// and redis backends are interchangeable. There is no invalidation beyond
// Clear (explicit clear-all).
type Service interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
	Close() error
}

// GetOrCompute returns the cached value for key, computing and storing it on
// a miss. Concurrent misses may compute twice; the duplicate write is
// harmless since entries are immutable once populated.
func GetOrCompute[T any](ctx context.Context, c Service, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	var v T
	err := c.Get(ctx, key, &v)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		// fall through to compute on backend failure; a broken cache must
		// not take the data path down
		_ = err
	}
	v, cerr := compute()
	if cerr != nil {
		return v, cerr
	}
	_ = c.Set(ctx, key, v, ttl)
	return v, nil
}
