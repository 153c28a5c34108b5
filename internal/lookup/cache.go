// Copyright (c) 2026 Book Alchemy. All rights reserved.

package lookup

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/text/cases"

	"github.com/nagrapoonam/Book-Alchemy/internal/platform/constants"
)

// CacheClient is the subset of [redis.Cmdable] used by [CachedFetcher].
type CacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedFetcher remembers found ISBNs in Redis. Misses and cache failures fall
// through to the wrapped [Fetcher]; absent results are not cached.
type CachedFetcher struct {
	next   Fetcher
	cache  CacheClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedFetcher(next Fetcher, cache CacheClient, ttl time.Duration, logger *slog.Logger) *CachedFetcher {
	return &CachedFetcher{next: next, cache: cache, ttl: ttl, logger: logger}
}

// FetchISBN implements [Fetcher].
func (f *CachedFetcher) FetchISBN(ctx context.Context, title string) (string, bool, error) {
	key := CacheKey(title)

	isbn, err := f.cache.Get(ctx, key).Result()
	switch {
	case err == nil:
		f.logger.Debug("isbn_cache_hit", slog.String("key", key))
		return isbn, true, nil
	case !errors.Is(err, redis.Nil):
		f.logger.Warn("isbn_cache_read_failed", slog.String("key", key), slog.Any("error", err))
	}

	isbn, found, err := f.next.FetchISBN(ctx, title)
	if err != nil || !found {
		return isbn, found, err
	}

	if err := f.cache.Set(ctx, key, isbn, f.ttl).Err(); err != nil {
		f.logger.Warn("isbn_cache_write_failed", slog.String("key", key), slog.Any("error", err))
	}

	return isbn, true, nil
}

// CacheKey folds case and surrounding space so equivalent titles share an entry.
func CacheKey(title string) string {
	return constants.RedisPrefixISBNLookup + cases.Fold().String(strings.TrimSpace(title))
}
