package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates the Redis client backing the redis snapshot store.
//
// Supported env vars:
//   - REDIS_ADDR (default: localhost:6379)
//   - REDIS_PASSWORD (optional)
//   - REDIS_DB (default: 0)
func NewRedisClient(ctx context.Context) (*redis.Client, error) {
	db, _ := strconv.Atoi(getenvDefault("REDIS_DB", "0"))

	client := redis.NewClient(&redis.Options{
		Addr:         getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password:     getenvDefault("REDIS_PASSWORD", ""),
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}
