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
	KeyArticle = "article:%d"

	articleTTL = 10 * time.Minute
)

type articleCache struct {
	client *redis.Client
}

var _ domain.ArticleCache = (*articleCache)(nil)

func NewArticleCache(client *redis.Client) *articleCache {
	return &articleCache{client}
}

func (c *articleCache) GetArticle(ctx context.Context, id int64) (res domain.Article, err error) {
	key := fmt.Sprintf(KeyArticle, id)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Article{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Article{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.Article{}, err
	}
	return
}

func (c *articleCache) SetArticle(ctx context.Context, a *domain.Article) error {
	key := fmt.Sprintf(KeyArticle, a.ID)
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, articleTTL).Err()
}

func (c *articleCache) DeleteArticle(ctx context.Context, id int64) error {
	key := fmt.Sprintf(KeyArticle, id)
	return c.client.Del(ctx, key).Err()
}
