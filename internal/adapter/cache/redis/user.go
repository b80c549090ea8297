// Package redis caches the immutable part of user identities keyed by API token.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

const keyPrefix = "user:token:"

// cachedUser leaves out VisitHistory, which changes on every shortened URL.
type cachedUser struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	APIToken  string    `json:"api_token"`
	CreatedAt time.Time `json:"created_at"`
}

type UserCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewUserCache(client *redis.Client, ttl time.Duration) *UserCache {
	return &UserCache{
		client: client,
		ttl:    ttl,
	}
}

// key hashes the token so raw credentials never appear in the keyspace.
func key(apiToken string) string {
	sum := sha256.Sum256([]byte(apiToken))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Get returns entity.ErrUserNotFound on a cache miss.
func (c *UserCache) Get(ctx context.Context, apiToken string) (*entity.User, error) {
	const op = "adapter.cache.redis.UserCache.Get"

	data, err := c.client.Get(ctx, key(apiToken)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrUserNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get key: %w", op, err)
	}

	var u cachedUser
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("%s: failed to decode cached user: %w", op, err)
	}

	return &entity.User{
		ID:        u.ID,
		Name:      u.Name,
		APIToken:  u.APIToken,
		CreatedAt: u.CreatedAt,
	}, nil
}

func (c *UserCache) Set(ctx context.Context, user *entity.User) error {
	const op = "adapter.cache.redis.UserCache.Set"

	data, err := json.Marshal(cachedUser{
		ID:        user.ID,
		Name:      user.Name,
		APIToken:  user.APIToken,
		CreatedAt: user.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("%s: failed to encode user: %w", op, err)
	}

	if err := c.client.Set(ctx, key(user.APIToken), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%s: failed to set key: %w", op, err)
	}

	return nil
}
