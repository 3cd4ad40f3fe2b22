package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/deppfellow/go-blog/internal/model"
)

const (
	DefaultUserCacheTTL = 5 * time.Minute
	userCachePrefix     = "user:"
)

// cachedUser mirrors model.User but keeps the password hash, which the
// public JSON shape omits.
type cachedUser struct {
	model.User
	PasswordHash string `json:"passwordHash"`
}

// UserCache is a read-through cache of single users keyed by id.
// A nil client turns every call into a miss or no-op.
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewUserCache(client *redis.Client, ttl time.Duration) *UserCache {
	return &UserCache{client: client, ttl: ttl}
}

func userCacheKey(id int64) string {
	return userCachePrefix + strconv.FormatInt(id, 10)
}

// Get returns (nil, nil) on a miss.
func (c *UserCache) Get(ctx context.Context, id int64) (*model.User, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	raw, err := c.client.Get(ctx, userCacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user %d from cache: %w", id, err)
	}

	var cu cachedUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		return nil, fmt.Errorf("failed to decode cached user %d: %w", id, err)
	}
	cu.User.PasswordHash = cu.PasswordHash

	return &cu.User, nil
}

func (c *UserCache) Set(ctx context.Context, u *model.User) error {
	if c == nil || c.client == nil || u == nil {
		return nil
	}

	raw, err := json.Marshal(cachedUser{User: *u, PasswordHash: u.PasswordHash})
	if err != nil {
		return fmt.Errorf("failed to encode user %d for cache: %w", u.ID, err)
	}

	if err := c.client.Set(ctx, userCacheKey(u.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write user %d to cache: %w", u.ID, err)
	}
	return nil
}

func (c *UserCache) Delete(ctx context.Context, id int64) error {
	if c == nil || c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, userCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to evict user %d from cache: %w", id, err)
	}
	return nil
}
