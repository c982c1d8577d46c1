package config

// Redis backs the response cache on the public list endpoints. If no
// address is configured or the connection fails during startup, the
// constructor returns nil and callers degrade gracefully by disabling
// caching.

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client for the configured address.
// The returned client is nil when the address is empty or the server does
// not answer a ping within two seconds.
func NewRedisClient(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
