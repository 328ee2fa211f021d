package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/felipemarinho/ewallet/internal/logger"
	"github.com/felipemarinho/ewallet/internal/models"
)

// UserCacheRepository caches user profiles in Redis. The profile read behind
// GET /users/me is by far the hottest query in the service.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewUserCacheRepository creates a new repository instance with the given TTL.
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("user:%s", userID)
}

// Get fetches a cached user profile. Returns nil on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	key := userCacheKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logger.Log.Infow("user cache get", "key", key, "error", err)
		return nil, err
	}

	var user models.UserDB
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		logger.Log.Infow("user cache get", "key", key, "error", err)
		return nil, err
	}

	return &user, nil
}

// Set caches a user profile with the configured expiration.
func (r *UserCacheRepository) Set(ctx context.Context, user models.UserDB) error {
	key := userCacheKey(user.UserID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("user cache set", "key", key, "error", err)

	return err
}

// Invalidate drops the cached profile; called on every profile mutation.
func (r *UserCacheRepository) Invalidate(ctx context.Context, userID uuid.UUID) error {
	key := userCacheKey(userID)

	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("user cache invalidate", "key", key, "error", err)

	return err
}
