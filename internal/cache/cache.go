// Package cache implements the cache-aside layer that sits between the query
// and mutation services and the persistent store.
//
// Values are JSON-encoded and stored under structured, colon-delimited keys
// (see keys.go) with per-class TTLs (see policy.go). The backing service is
// optional: a Store without a backend, or one whose backend fails, behaves
// as if every lookup missed and every invalidation succeeded.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"
)

// ErrMiss is returned by backends when a key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Backend is the keyed cache service. Implementations must be safe for
// concurrent use.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

const defaultOpTimeout = 250 * time.Millisecond

// Store is the cache-aside front of a Backend. A nil *Store is valid and
// disabled.
type Store struct {
	backend   Backend
	prefix    string
	opTimeout time.Duration
	log       *slog.Logger
	metrics   *Metrics
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix namespaces every key, e.g. "loopback-cache".
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// WithOpTimeout bounds each backend round trip.
func WithOpTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.opTimeout = d
		}
	}
}

// WithMetrics records hit/miss/error counters.
func WithMetrics(m *Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// New creates a Store over backend. A nil backend yields a disabled Store.
func New(log *slog.Logger, backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:   backend,
		opTimeout: defaultOpTimeout,
		log:       log.With("component", "cache"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Disabled returns a Store that always computes and never stores.
func Disabled() *Store {
	return nil
}

// Enabled reports whether a backend is attached.
func (s *Store) Enabled() bool {
	return s != nil && s.backend != nil
}

// Ping checks the backend. A disabled store reports no error.
func (s *Store) Ping(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()
	return s.backend.Ping(ctx)
}

// GetOrCompute returns the cached value for key, or invokes compute, stores
// its result for ttl and returns it. Errors from compute are returned as is
// and never cached. Backend failures are logged and otherwise ignored.
//
// Concurrent misses for the same key may all run compute; the last write
// wins.
func GetOrCompute[V any](ctx context.Context, s *Store, key string, ttl time.Duration, compute func(ctx context.Context) (V, error)) (V, error) {
	if !s.Enabled() {
		s.observe(resultBypass)
		return compute(ctx)
	}

	if raw, ok := s.get(ctx, key); ok {
		var v V
		err := json.Unmarshal(raw, &v)
		if err == nil {
			s.observe(resultHit)
			return v, nil
		}
		s.log.WarnContext(ctx, "cache value undecodable, recomputing",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
	s.observe(resultMiss)

	v, err := compute(ctx)
	if err != nil {
		return v, err
	}

	s.set(ctx, key, v, ttl)
	return v, nil
}

// Bypass runs compute without consulting the cache. It exists so that
// uncacheable request shapes are visible in metrics.
func Bypass[V any](ctx context.Context, s *Store, compute func(ctx context.Context) (V, error)) (V, error) {
	s.observe(resultBypass)
	return compute(ctx)
}

// Invalidate deletes keys from the backend before returning. It is best
// effort: failures are logged and the stale entries expire with their TTL.
// It runs even if ctx is already cancelled, since the write it follows has
// been committed.
func (s *Store) Invalidate(ctx context.Context, keys ...string) {
	if !s.Enabled() || len(keys) == 0 {
		return
	}

	opCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opTimeout)
	defer cancel()

	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.fullKey(k)
	}

	if err := s.backend.Delete(opCtx, full...); err != nil {
		s.metrics.invalidated(len(keys), false)
		s.log.WarnContext(ctx, "cache invalidate failed",
			slog.Any("keys", keys),
			slog.String("error", err.Error()),
		)
		return
	}
	s.metrics.invalidated(len(keys), true)
}

func (s *Store) get(ctx context.Context, key string) ([]byte, bool) {
	opCtx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	raw, err := s.backend.Get(opCtx, s.fullKey(key))
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			s.observe(resultError)
			s.log.WarnContext(ctx, "cache get failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return nil, false
	}
	return raw, true
}

func (s *Store) set(ctx context.Context, key string, v any, ttl time.Duration) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.WarnContext(ctx, "cache value unencodable",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	if err := s.backend.Set(opCtx, s.fullKey(key), raw, ttl); err != nil {
		s.observe(resultError)
		s.log.WarnContext(ctx, "cache set failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Store) observe(result string) {
	if s == nil {
		return
	}
	s.metrics.observe(result)
}

func (s *Store) fullKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}
