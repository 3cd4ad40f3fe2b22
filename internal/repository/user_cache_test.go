package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/go-blog/internal/model"
)

func TestUserCache_NilClientIsNoop(t *testing.T) {
	ctx := context.Background()
	cache := NewUserCache(nil, time.Minute)

	u, err := cache.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, u)
	assert.NoError(t, cache.Set(ctx, &model.User{ID: 1}))
	assert.NoError(t, cache.Delete(ctx, 1))

	var nilCache *UserCache
	u, err = nilCache.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserCacheKey(t *testing.T) {
	assert.Equal(t, "user:42", userCacheKey(42))
}

func TestUserCache_RoundTrip(t *testing.T) {
	addr := os.Getenv("GOBLOG_TEST_REDIS_ADDRESS")
	if addr == "" {
		t.Skip("GOBLOG_TEST_REDIS_ADDRESS not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	cache := NewUserCache(client, time.Minute)

	user := &model.User{ID: 7, FirstName: "John", Email: "john@doe.com", PasswordHash: "hash"}
	require.NoError(t, cache.Set(ctx, user))

	got, err := cache.Get(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "john@doe.com", got.Email)
	assert.Equal(t, "hash", got.PasswordHash)

	require.NoError(t, cache.Delete(ctx, 7))
	got, err = cache.Get(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, got)
}
