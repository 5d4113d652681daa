package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
)

const (
	KeyNotifyCounts = "notify:counts:%d"

	// Short TTL: the cache only has to absorb poll bursts, the ledger
	// aggregate stays the source of truth.
	countsTTL = time.Minute
)

type notificationCountCache struct {
	client *redis.Client
}

var _ domain.NotificationCountCache = (*notificationCountCache)(nil)

func NewNotificationCountCache(client *redis.Client) *notificationCountCache {
	return &notificationCountCache{client}
}

func (c *notificationCountCache) GetCounts(ctx context.Context, userID int64) (res domain.NotificationCounts, err error) {
	key := fmt.Sprintf(KeyNotifyCounts, userID)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.NotificationCounts{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.NotificationCounts{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.NotificationCounts{}, err
	}
	return
}

func (c *notificationCountCache) SetCounts(ctx context.Context, userID int64, counts domain.NotificationCounts) error {
	key := fmt.Sprintf(KeyNotifyCounts, userID)
	data, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, countsTTL).Err()
}

func (c *notificationCountCache) Invalidate(ctx context.Context, userIDs ...int64) error {
	if len(userIDs) == 0 {
		return nil
	}
	keys := make([]string, len(userIDs))
	for i, uid := range userIDs {
		keys[i] = fmt.Sprintf(KeyNotifyCounts, uid)
	}
	return c.client.Del(ctx, keys...).Err()
}
