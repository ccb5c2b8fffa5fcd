// ABOUTME: Redis cache implementation using go-redis client
// ABOUTME: Shares recipe results between API instances under a key prefix

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recipe-finder-api/core/interfaces"
	"recipe-finder-api/pkg/config"

	"github.com/redis/go-redis/v9"
)

const (
	// connectTimeout bounds the startup ping
	connectTimeout = 5 * time.Second

	// scanBatch is the COUNT hint used when clearing the prefix
	scanBatch = 200
)

// RedisCache implements interfaces.Cache. Every key is stored under the
// configured prefix so several deployments can share one database.
type RedisCache struct {
	client *redis.Client
	prefix string
}

var _ interfaces.Cache = (*RedisCache)(nil)

// NewRedisCache connects to Redis and fails when the server does not answer a ping
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Address,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: connectTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Address, err)
	}

	return &RedisCache{client: client, prefix: cfg.KeyPrefix}, nil
}

func (c *RedisCache) key(k string) string {
	return c.prefix + k
}

// Get returns interfaces.ErrCacheMiss for absent or expired keys
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, interfaces.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

// Set stores value for ttl; a zero ttl keeps it until deleted
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.key(key)).Err()
}

// Clear deletes every key under the prefix and reports how many were removed.
// With an empty prefix it refuses rather than wiping the whole database.
func (c *RedisCache) Clear(ctx context.Context) (int, error) {
	if c.prefix == "" {
		return 0, errors.New("refusing to clear redis without a key prefix")
	}

	removed := 0
	iter := c.client.Scan(ctx, 0, c.prefix+"*", scanBatch).Iterator()
	batch := make([]string, 0, scanBatch)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := c.client.Del(ctx, batch...).Result()
		removed += int(n)
		batch = batch[:0]
		return err
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := flush(); err != nil {
				return removed, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return removed, err
	}
	return removed, flush()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
