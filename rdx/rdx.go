// Package rdx wraps the Redis connection used for catalog caching and the
// storefront event channel. Every method is nil-safe so the server keeps
// working (uncached) when Redis is unavailable.
package rdx

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
}

// New connects and pings Redis. A failed ping is returned to the caller,
// which may choose to run without a cache.
func New(addr, password string) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Cache{client: client}, nil
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("rdx: set %s failed: %v", key, err)
	}
}

func (c *Cache) Del(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("rdx: del failed: %v", err)
	}
}

func (c *Cache) Incr(ctx context.Context, key string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Incr(ctx, key).Err(); err != nil {
		log.Printf("rdx: incr %s failed: %v", key, err)
	}
}

func (c *Cache) Publish(ctx context.Context, channel, payload string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Publish(ctx, channel, payload).Err()
}

// Subscribe returns the message channel for a Redis pub/sub channel, or
// nil when no connection is available.
func (c *Cache) Subscribe(ctx context.Context, channel string) <-chan *redis.Message {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Subscribe(ctx, channel).Channel()
}

func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
