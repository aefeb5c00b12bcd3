package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewRedisClient creates and validates a Redis client connection from a
// redis:// URL.
func NewRedisClient(ctx context.Context, redisURL string, log zerolog.Logger) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info().
		Str("addr", opt.Addr).
		Int("db", opt.DB).
		Msg("Redis connected")

	return rdb, nil
}

// Redis is the Store implementation backed by a shared Redis instance.
// Values are stored as JSON under prefix-namespaced keys with a server-side
// TTL, so expiry and invalidation are visible to every process sharing the
// client. Same-key fetches are not deduplicated here either — last write
// wins, per the Store contract.
type Redis[V any] struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	log    zerolog.Logger
}

// NewRedis creates a Redis-backed read-through cache. All keys are
// namespaced under prefix so InvalidateAll cannot touch unrelated data in a
// shared instance. A ttl of 0 means DefaultTTL.
func NewRedis[V any](rdb *redis.Client, prefix string, ttl time.Duration, log zerolog.Logger) *Redis[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis[V]{
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
		log:    log.With().Str("component", "rediscache").Logger(),
	}
}

func (r *Redis[V]) namespaced(key string) string {
	return r.prefix + ":" + key
}

// Get implements Store.
func (r *Redis[V]) Get(ctx context.Context, key string, fetch FetchFunc[V]) (V, error) {
	var value V

	raw, err := r.rdb.Get(ctx, r.namespaced(key)).Bytes()
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &value); err == nil {
			r.log.Debug().Str("key", key).Msg("cache hit")
			return value, nil
		}
		// Undecodable entry: treat as a miss and overwrite below.
		r.log.Warn().Str("key", key).Msg("discarding undecodable cache entry")
	case errors.Is(err, redis.Nil):
		r.log.Debug().Str("key", key).Msg("cache miss")
	default:
		// Redis being unreachable must not take reads down; fall through
		// to a direct fetch.
		r.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	value, err = fetch(ctx)
	if err != nil {
		var zero V
		return zero, err
	}

	raw, err = json.Marshal(value)
	if err != nil {
		return value, nil
	}
	if err := r.rdb.Set(ctx, r.namespaced(key), raw, r.ttl).Err(); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}

	return value, nil
}

// Invalidate implements Store.
func (r *Redis[V]) Invalidate(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, r.namespaced(key)).Err(); err != nil {
		return fmt.Errorf("invalidate %s: %w", key, err)
	}
	r.log.Debug().Str("key", key).Msg("cache invalidated")
	return nil
}

// InvalidateAll implements Store.
func (r *Redis[V]) InvalidateAll(ctx context.Context) error {
	iter := r.rdb.Scan(ctx, 0, r.prefix+":*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", r.prefix, err)
	}

	if len(keys) > 0 {
		if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("clear %s: %w", r.prefix, err)
		}
	}

	r.log.Debug().Int("keys", len(keys)).Msg("cache cleared")
	return nil
}
