// SPDX-License-Identifier: MIT
// Package cache stores serialized route answers in Redis.
//
// Keys are namespaced by a graph fingerprint, so a weight change never
// serves a stale answer: the next lookup simply misses. Old generations
// age out through the TTL.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tollpath:route:" // tollpath:route:{fingerprint}:{query digest}

// RouteCache is a Redis-backed byte cache.
type RouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New wraps an existing client.
func New(client *redis.Client, ttl time.Duration) *RouteCache {
	return &RouteCache{client: client, ttl: ttl}
}

// Dial connects to addr and verifies the connection with PING.
func Dial(ctx context.Context, addr string, ttl time.Duration) (*RouteCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("cache: ping %s: %w", addr, err)
	}

	return New(client, ttl), nil
}

// Key builds the cache key for a query digest under a graph fingerprint.
func Key(fingerprint, digest string) string {
	return keyPrefix + fingerprint + ":" + digest
}

// Get returns the stored value. ok is false on a miss.
func (c *RouteCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get: %w", err)
	}

	return b, true, nil
}

// Set stores value under key with the configured TTL.
func (c *RouteCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set: %w", err)
	}

	return nil
}

// Close releases the underlying client.
func (c *RouteCache) Close() error {
	return c.client.Close()
}
