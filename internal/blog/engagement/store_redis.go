// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package engagement

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkwell-app/inkwell/internal/platform/constants"
)

// RedisLikeCache implements [LikeCache] using Redis.
//
// # Degradation
//
// Cache failures are logged and treated as misses — the detail page falls
// back to counting in Postgres rather than erroring.
type RedisLikeCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisLikeCache creates a new Redis-backed LikeCache.
func NewRedisLikeCache(client *redis.Client, logger *slog.Logger) *RedisLikeCache {
	return &RedisLikeCache{client: client, logger: logger}
}

/*
GetCount returns the cached like total for a post.

Returns:
  - int: the cached count
  - bool: false on a miss or any Redis failure
*/
func (cache *RedisLikeCache) GetCount(context context.Context, postID string) (int, bool) {
	key := constants.RedisPrefixLikeCount + postID

	raw, err := cache.client.Get(context, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cache.logger.WarnContext(context, "like_cache_get_failed",
				slog.String("post_id", postID),
				slog.Any("error", err),
			)
		}
		return 0, false
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return count, true
}

/*
SetCount stores a like total with a TTL.
*/
func (cache *RedisLikeCache) SetCount(context context.Context, postID string, count int, ttl time.Duration) {
	key := constants.RedisPrefixLikeCount + postID

	if err := cache.client.Set(context, key, count, ttl).Err(); err != nil {
		cache.logger.WarnContext(context, "like_cache_set_failed",
			slog.String("post_id", postID),
			slog.Any("error", err),
		)
	}
}

/*
Invalidate drops the cached total after a new like lands.
*/
func (cache *RedisLikeCache) Invalidate(context context.Context, postID string) {
	key := constants.RedisPrefixLikeCount + postID

	if err := cache.client.Del(context, key).Err(); err != nil {
		cache.logger.WarnContext(context, "like_cache_invalidate_failed",
			slog.String("post_id", postID),
			slog.Any("error", err),
		)
	}
}
