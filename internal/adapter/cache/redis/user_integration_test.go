//go:build integration

package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

func setupRedis(t testing.TB) *redis.Client {
	t.Helper()

	ctx := context.Background()

	cont, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start redis container: %v", err)
	}
	t.Cleanup(func() {
		if err := cont.Terminate(ctx); err != nil {
			t.Fatalf("Failed to terminate redis container: %v", err)
		}
	})

	host, err := cont.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := cont.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%d", host, port.Int())})
	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestUserCache(t *testing.T) {
	cache := NewUserCache(setupRedis(t), time.Minute)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Name:         "alice",
		APIToken:     "token",
		CreatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		VisitHistory: []time.Time{time.Now()},
	}

	_, err := cache.Get(ctx, "token")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)

	require.NoError(t, cache.Set(ctx, user))

	got, err := cache.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "alice", got.Name)
	assert.True(t, user.CreatedAt.Equal(got.CreatedAt))
	assert.Empty(t, got.VisitHistory)
}
