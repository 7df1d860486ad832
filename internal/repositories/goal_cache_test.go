package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-goal-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestGoalListCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewGoalListCacheRepository(rdb, 2*time.Second)

	ownerID := uuid.New()
	goals := []models.Goal{
		{ID: uuid.NewString(), Name: "run", Description: "a marathon", UserID: ownerID.String()},
		{ID: uuid.NewString(), Name: "read", Description: "12 books", UserID: ownerID.String()},
	}

	t.Run("Set and Get goal list", func(t *testing.T) {
		err := repo.Set(ctx, ownerID, goals)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, ownerID)
		assert.NoError(t, err)
		assert.Equal(t, goals, got)
	})

	t.Run("Get returns nil on cache miss", func(t *testing.T) {
		got, err := repo.Get(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Invalidate drops the cached list", func(t *testing.T) {
		err := repo.Set(ctx, ownerID, goals)
		assert.NoError(t, err)

		err = repo.Invalidate(ctx, ownerID)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, ownerID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Cached list expires", func(t *testing.T) {
		err := repo.Set(ctx, ownerID, goals)
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, ownerID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
