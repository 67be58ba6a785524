package caching

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
)

var ErrNoBackend = errors.New("cache: neither redis nor local cache configured")

type Cache interface {
	Get(ctx context.Context, key string, target any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// UseCache returns the cached value under key, or runs callback and caches its result.
// Errors other than a cache miss are returned as is and callback is not run.
func UseCache[T any](ctx context.Context, cash Cache, key string, ttl time.Duration, callback func() (T, error)) (T, error) {
	var v T
	err := cash.Get(ctx, key, &v)
	if !errors.Is(err, cache.ErrCacheMiss) {
		return v, err
	}

	v, err = callback()
	if err != nil {
		return v, err
	}

	// fire and forget
	//nolint:errcheck
	cash.Set(ctx, key, v, ttl)
	return v, nil
}

type CacheRedis struct {
	instance *cache.Cache
}

func (c *CacheRedis) Get(ctx context.Context, key string, target any) error {
	return c.instance.Get(ctx, key, target)
}

func (c *CacheRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.instance.Set(&cache.Item{
		Ctx:   ctx,
		Key:   key,
		Value: value,
		TTL:   ttl,
	})
}

func (c *CacheRedis) Delete(ctx context.Context, key string) error {
	return c.instance.Delete(ctx, key)
}

// NewCacheRedis builds a cache on top of client. A nil client gives a process-local cache,
// which then must be enabled with withLocalCache.
func NewCacheRedis(client redis.UniversalClient, withLocalCache bool) (*CacheRedis, error) {
	opts := &cache.Options{}
	if client != nil {
		opts.Redis = client
	}
	if withLocalCache {
		opts.LocalCache = cache.NewTinyLFU(10000, time.Minute)
	}
	if opts.Redis == nil && opts.LocalCache == nil {
		return nil, ErrNoBackend
	}
	return &CacheRedis{cache.New(opts)}, nil
}
