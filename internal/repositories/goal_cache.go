package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-goal-tracker/internal/logger"
	"github.com/sbilibin2017/gw-goal-tracker/internal/models"
)

// GoalListCacheRepository caches per-owner goal lists in Redis.
type GoalListCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached lists
}

// NewGoalListCacheRepository creates a new repository instance with the given TTL.
func NewGoalListCacheRepository(client *redis.Client, expiration time.Duration) *GoalListCacheRepository {
	return &GoalListCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func goalListKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("goals:%s", ownerID)
}

// Get fetches the cached goal list for an owner. A cache miss returns
// (nil, nil).
func (r *GoalListCacheRepository) Get(ctx context.Context, ownerID uuid.UUID) ([]models.Goal, error) {
	key := goalListKey(ownerID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	var goals []models.Goal
	if err := json.Unmarshal([]byte(val), &goals); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	return goals, nil
}

// Set caches the goal list for an owner with the configured expiration.
func (r *GoalListCacheRepository) Set(ctx context.Context, ownerID uuid.UUID, goals []models.Goal) error {
	key := goalListKey(ownerID)

	data, err := json.Marshal(goals)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", len(goals),
		"error", err,
	)

	return err
}

// Invalidate drops the cached goal list for an owner.
func (r *GoalListCacheRepository) Invalidate(ctx context.Context, ownerID uuid.UUID) error {
	key := goalListKey(ownerID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"error", err,
	)

	return err
}
