// Package redis opens go-redis clients.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	defaultPoolSize     = 10
	defaultMinIdleConns = 2
)

// New parses url (redis://[user:password@]host:port/db) and pings the server.
func New(ctx context.Context, url string) (*redis.Client, error) {
	const op = "redis.New"

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse url: %w", op, err)
	}

	opt.PoolSize = defaultPoolSize
	opt.MinIdleConns = defaultMinIdleConns

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%s: failed to connect to redis: %w", op, err)
	}

	return client, nil
}
