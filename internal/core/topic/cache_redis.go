// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package topic

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/boardapi/internal/platform/constants"
	"github.com/taibuivan/boardapi/internal/platform/ctxutil"
)

// RedisCache implements [Cache] on a single Redis key holding the JSON list.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCache creates a Redis-backed topic list cache.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

/*
Get returns the cached topic list.

Returns:
  - []*Topic, true on a hit
  - nil, false on a miss, an expired key or any Redis/decoding failure
*/
func (cache *RedisCache) Get(context context.Context) ([]*Topic, bool) {
	payload, err := cache.client.Get(context, constants.RedisKeyTopicList).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			ctxutil.LoggerOr(context, cache.logger).WarnContext(context, "topic_cache_get_failed", slog.Any("error", err))
		}
		return nil, false
	}

	var topics []*Topic
	if err := json.Unmarshal(payload, &topics); err != nil {
		ctxutil.LoggerOr(context, cache.logger).WarnContext(context, "topic_cache_decode_failed", slog.Any("error", err))
		return nil, false
	}

	return topics, true
}

// Set stores the topic list with the configured TTL.
func (cache *RedisCache) Set(context context.Context, topics []*Topic) {
	payload, err := json.Marshal(topics)
	if err != nil {
		ctxutil.LoggerOr(context, cache.logger).WarnContext(context, "topic_cache_encode_failed", slog.Any("error", err))
		return
	}

	if err := cache.client.Set(context, constants.RedisKeyTopicList, payload, cache.ttl).Err(); err != nil {
		ctxutil.LoggerOr(context, cache.logger).WarnContext(context, "topic_cache_set_failed", slog.Any("error", err))
	}
}

// Invalidate drops the cached list so the next read goes to PostgreSQL.
func (cache *RedisCache) Invalidate(context context.Context) {
	if err := cache.client.Del(context, constants.RedisKeyTopicList).Err(); err != nil {
		ctxutil.LoggerOr(context, cache.logger).WarnContext(context, "topic_cache_invalidate_failed", slog.Any("error", err))
	}
}
