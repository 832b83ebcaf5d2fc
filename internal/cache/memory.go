package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// MemoryBackend is an in-process Backend. It is intended for single-instance
// deployments and tests; entries are not shared between processes.
type MemoryBackend struct {
	cache *ttlcache.Cache[string, []byte]
}

// NewMemoryBackend creates a MemoryBackend holding at most capacity keys and
// starts its expiry loop. Call Close to stop it.
func NewMemoryBackend(capacity uint64) *MemoryBackend {
	c := ttlcache.New(
		ttlcache.WithCapacity[string, []byte](capacity),
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)
	go c.Start()
	return &MemoryBackend{cache: c}
}

func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	item := b.cache.Get(key)
	if item == nil || item.IsExpired() {
		return nil, ErrMiss
	}
	return item.Value(), nil
}

func (b *MemoryBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	b.cache.Set(key, value, ttl)
	return nil
}

func (b *MemoryBackend) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		b.cache.Delete(k)
	}
	return nil
}

func (b *MemoryBackend) Ping(context.Context) error {
	return nil
}

// Close stops the expiry loop.
func (b *MemoryBackend) Close() {
	b.cache.Stop()
}
