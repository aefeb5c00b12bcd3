// Package cache provides the read-through, time-expiring cache that fronts
// the external record store. Two implementations share one contract: an
// in-process store for a single-process deployment and a Redis-backed store
// for deployments that share roster data across processes.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the expiry applied when a store is built without an
// explicit one.
const DefaultTTL = 5 * time.Minute

// FetchFunc retrieves fresh data from the external record store. It is
// invoked only on a miss or after expiry; its error is surfaced to the
// caller unchanged and never cached.
type FetchFunc[V any] func(ctx context.Context) (V, error)

// Store is the read-through contract. Get returns the cached value for key
// if one is present and younger than the store's TTL; otherwise it invokes
// fetch, records the result, and returns it.
//
// Concurrent Gets for the same key before the first fetch completes are not
// deduplicated — each in-flight call runs its own fetch and the cache ends
// up holding whichever fetch populated it last. That is an accepted
// simplification, not a race to fix: callers needing single-flight
// coalescing must layer it on top.
type Store[V any] interface {
	Get(ctx context.Context, key string, fetch FetchFunc[V]) (V, error)

	// Invalidate drops one entry. Every mutation of the record store must
	// invalidate the keys derived from the mutated entity before the next
	// read, or callers observe stale aggregates.
	Invalidate(ctx context.Context, key string) error

	// InvalidateAll drops every entry held by the store.
	InvalidateAll(ctx context.Context) error
}
