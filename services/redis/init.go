package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient accepts either a redis:// URL or a bare host:port address.
func NewRedisClient(addr string) (*redis.Client, error) {
	if strings.Contains(addr, "://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parsing Redis URL: %w", err)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: addr}), nil
}

// InitRedis connects to Redis and returns a report cache with the given TTL.
func InitRedis(addr string, ttl time.Duration) (*ReportCache, error) {
	client, err := NewRedisClient(addr)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return NewReportCache(client, ttl), nil
}

// CloseRedis gracefully closes the Redis connection
func CloseRedis(rc *ReportCache) error {
	if err := rc.client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %w", err)
	}
	return nil
}
