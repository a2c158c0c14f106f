package cache

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

const wildcard = "*"

// Remember serves key from store. On a miss, or when Redis is unreachable, it calls load and
// saves the result in the background. Failed loads are never cached.
func Remember[T any](ctx context.Context, store RedisCache, key string, ttl int, load func(context.Context) (T, error)) (T, error) {
	var cached T
	if err := store.Get(ctx, key, &cached); err == nil {
		log.Debug().Str("key", key).Msg("cache hit")

		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	go func() {
		if err := store.Save(context.WithoutCancel(ctx), key, value, ttl); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to save cache")
		}
	}()

	return value, nil
}

// Evict drops keys in the background. A key ending in "*" is a pattern and clears every match.
func Evict(ctx context.Context, store RedisCache, keys ...string) {
	go func() {
		EvictNow(context.WithoutCancel(ctx), store, keys...)
	}()
}

// EvictNow is the blocking form of Evict. Failures are logged, the remaining keys are still dropped.
func EvictNow(ctx context.Context, store RedisCache, keys ...string) {
	for _, key := range keys {
		var err error

		if strings.HasSuffix(key, wildcard) {
			err = store.Clear(ctx, key)
		} else {
			err = store.Delete(ctx, key)
		}

		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to evict cache")
		}
	}
}

// Pattern matches every key under prefix.
func Pattern(prefix string) string {
	return prefix + wildcard
}
