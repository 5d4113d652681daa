package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
	redisRepo "github.com/Zhi-Yan1103/NZ-Discovery/internal/repository/redis"
)

func TestGetCounts(t *testing.T) {
	t.Run("hit", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := redisRepo.NewNotificationCountCache(client)

		counts := domain.NotificationCounts{Total: 5, Unread: 2}
		data, err := json.Marshal(counts)
		require.NoError(t, err)
		mock.ExpectGet("notify:counts:2").SetVal(string(data))

		got, err := cache.GetCounts(context.TODO(), 2)

		assert.NoError(t, err)
		assert.Equal(t, counts, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := redisRepo.NewNotificationCountCache(client)

		mock.ExpectGet("notify:counts:2").RedisNil()

		_, err := cache.GetCounts(context.TODO(), 2)

		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})
}

func TestSetCounts(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := redisRepo.NewNotificationCountCache(client)

	counts := domain.NotificationCounts{Total: 5, Unread: 2}
	data, err := json.Marshal(counts)
	require.NoError(t, err)
	mock.ExpectSet("notify:counts:2", data, time.Minute).SetVal("OK")

	err = cache.SetCounts(context.TODO(), 2, counts)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidate(t *testing.T) {
	t.Run("deletes-every-recipient-key", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := redisRepo.NewNotificationCountCache(client)

		mock.ExpectDel("notify:counts:2", "notify:counts:3").SetVal(2)

		err := cache.Invalidate(context.TODO(), 2, 3)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no-recipients-is-a-noop", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := redisRepo.NewNotificationCountCache(client)

		err := cache.Invalidate(context.TODO())

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
