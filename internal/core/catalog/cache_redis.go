// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/locallibrary/internal/platform/constants"
)

// RedisCache implements [Cache] as one JSON value with a TTL.
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed counts cache.
func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (cache *RedisCache) GetCounts(context context.Context) (*Counts, error) {
	raw, err := cache.client.Get(context, constants.RedisKeyCatalogCounts).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis_counts_get_failed: %w", err)
	}

	counts := &Counts{}
	if err := json.Unmarshal(raw, counts); err != nil {
		return nil, fmt.Errorf("redis_counts_decode_failed: %w", err)
	}
	return counts, nil
}

func (cache *RedisCache) SetCounts(context context.Context, counts *Counts) error {
	raw, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("redis_counts_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, constants.RedisKeyCatalogCounts, raw, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_counts_set_failed: %w", err)
	}
	return nil
}
