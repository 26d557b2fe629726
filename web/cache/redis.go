package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisStore backs the cache with a shared redis instance. Selecting it gives
// cross-process invalidation for horizontally scaled deployments.
type redisStore struct {
	client *redis.Client
	ctx    context.Context
}

func newRedisStore(addr string) (*redisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx := context.Background()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &redisStore{client: client, ctx: ctx}, nil
}

func (r *redisStore) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", ErrMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *redisStore) Set(key string, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

func (r *redisStore) Delete(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *redisStore) Close() error {
	return r.client.Close()
}
