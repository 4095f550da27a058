package apiclient

import (
	"context"
	"time"

	"backend/internal/app/redis"

	"github.com/sirupsen/logrus"
)

// RedisCache — разделяемый кэш чтений поверх Redis; ошибки бэкенда
// не фатальны, промах кэша дешевле отказа
type RedisCache struct {
	client *redis.Client
	prefix string
}

func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

func (r *RedisCache) key(key string) string {
	return r.prefix + key
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := r.client.Get(ctx, r.key(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := r.client.Set(ctx, r.key(key), value, ttl); err != nil {
		logrus.Warnf("redis cache set %s: %v", key, err)
	}
}

func (r *RedisCache) Delete(ctx context.Context, keys ...string) {
	prefixed := make([]string, 0, len(keys))
	for _, key := range keys {
		prefixed = append(prefixed, r.key(key))
	}
	if err := r.client.Del(ctx, prefixed...); err != nil {
		logrus.Warnf("redis cache delete: %v", err)
	}
}
