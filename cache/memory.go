package cache

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type memoryEntry[V any] struct {
	value     V
	fetchedAt time.Time
}

// Memory is the in-process Store implementation. Each instance owns its own
// entries and clock, so tests can run isolated caches against a fake clock;
// nothing in this package is process-global state.
//
// A single mutex serialises map access. Fetches run outside the lock, so a
// slow record store never blocks reads of other keys — and same-key calls
// overlap, per the Store contract.
type Memory[V any] struct {
	mu      sync.Mutex
	entries map[string]memoryEntry[V]

	ttl time.Duration
	now func() time.Time
	log zerolog.Logger
}

// MemoryOption configures a Memory store.
type MemoryOption[V any] func(*Memory[V])

// WithTTL overrides DefaultTTL.
func WithTTL[V any](ttl time.Duration) MemoryOption[V] {
	return func(m *Memory[V]) { m.ttl = ttl }
}

// WithClock injects the time source used to stamp and expire entries.
func WithClock[V any](now func() time.Time) MemoryOption[V] {
	return func(m *Memory[V]) { m.now = now }
}

// WithLogger attaches a logger; cache traffic is logged at debug level.
func WithLogger[V any](log zerolog.Logger) MemoryOption[V] {
	return func(m *Memory[V]) { m.log = log.With().Str("component", "cache").Logger() }
}

// NewMemory creates an in-process read-through cache.
func NewMemory[V any](opts ...MemoryOption[V]) *Memory[V] {
	m := &Memory[V]{
		entries: make(map[string]memoryEntry[V]),
		ttl:     DefaultTTL,
		now:     time.Now,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get implements Store.
func (m *Memory[V]) Get(ctx context.Context, key string, fetch FetchFunc[V]) (V, error) {
	m.mu.Lock()
	entry, ok := m.entries[key]
	fresh := ok && m.now().Sub(entry.fetchedAt) < m.ttl
	m.mu.Unlock()

	if fresh {
		m.log.Debug().Str("key", key).Msg("cache hit")
		return entry.value, nil
	}

	if ok {
		m.log.Debug().Str("key", key).Msg("cache entry expired")
	} else {
		m.log.Debug().Str("key", key).Msg("cache miss")
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero V
		return zero, err
	}

	m.mu.Lock()
	m.entries[key] = memoryEntry[V]{value: value, fetchedAt: m.now()}
	m.mu.Unlock()

	return value, nil
}

// Invalidate implements Store.
func (m *Memory[V]) Invalidate(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()

	m.log.Debug().Str("key", key).Msg("cache invalidated")
	return nil
}

// InvalidateAll implements Store.
func (m *Memory[V]) InvalidateAll(_ context.Context) error {
	m.mu.Lock()
	m.entries = make(map[string]memoryEntry[V])
	m.mu.Unlock()

	m.log.Debug().Msg("cache cleared")
	return nil
}
