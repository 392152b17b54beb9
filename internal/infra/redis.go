package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// cacheCallTimeout bounds a single cache round trip. The response cache fails
// open, so a slow Redis must not hold requests for long.
const cacheCallTimeout = 500 * time.Millisecond

// NewRedisClient builds the response-cache client from a redis:// URL and
// verifies connectivity. Timeouts given in the URL take precedence.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, fmt.Errorf("redis url is required")
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if opt.ClientName == "" {
		opt.ClientName = "btcwallet-cache"
	}
	if opt.ReadTimeout == 0 {
		opt.ReadTimeout = cacheCallTimeout
	}
	if opt.WriteTimeout == 0 {
		opt.WriteTimeout = cacheCallTimeout
	}
	opt.MaxRetries = 1

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opt.Addr, err)
	}

	return client, nil
}
