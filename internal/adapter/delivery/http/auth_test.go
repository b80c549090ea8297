package http

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

func TestUserFromContext(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		user, ok := userFromContext(context.Background())

		assert.False(t, ok)
		assert.Nil(t, user)
	})

	t.Run("nil user", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), userCtxKey{}, (*entity.User)(nil))
		_, ok := userFromContext(ctx)

		assert.False(t, ok)
	})

	t.Run("present", func(t *testing.T) {
		want := &entity.User{Name: "alice"}
		ctx := context.WithValue(context.Background(), userCtxKey{}, want)

		user, ok := userFromContext(ctx)

		assert.True(t, ok)
		assert.Equal(t, want, user)
	})
}
