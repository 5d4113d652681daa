package article

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
)

const bloomWarmupBatch = 500

type Service struct {
	articleRepo  domain.ArticleRepository
	articleCache domain.ArticleCache
	bloomRepo    domain.BloomRepository
	fanOut       domain.FanOut

	// collapses concurrent cache-miss loads of the same article
	loadGroup singleflight.Group
}

var _ domain.ArticleUsecase = (*Service)(nil)

// NewService will create a new article service object
func NewService(a domain.ArticleRepository, c domain.ArticleCache, b domain.BloomRepository, f domain.FanOut) *Service {
	return &Service{
		articleRepo:  a,
		articleCache: c,
		bloomRepo:    b,
		fanOut:       f,
	}
}

func (a *Service) FetchAll(ctx context.Context, sortBy, sortOrder string) ([]domain.Article, error) {
	return a.articleRepo.FetchAll(ctx, sortBy, sortOrder)
}

// Search answers an empty list for a blank query without touching the
// store.
func (a *Service) Search(ctx context.Context, query, sortBy, sortOrder string) ([]domain.Article, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Article{}, nil
	}
	return a.articleRepo.Search(ctx, query, sortBy, sortOrder)
}

func (a *Service) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	res, err := a.articleCache.GetArticle(ctx, id)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("cache get error: %v", err)
	}

	v, err, _ := a.loadGroup.Do(strconv.FormatInt(id, 10), func() (interface{}, error) {
		art, err := a.articleRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		go func(art domain.Article) {
			if err := a.articleCache.SetArticle(context.Background(), &art); err != nil {
				logrus.Warnf("failed to set cache: %v", err)
			}
		}(art)

		return art, nil
	})
	if err != nil {
		return domain.Article{}, err
	}

	return v.(domain.Article), nil
}

func (a *Service) GetByUser(ctx context.Context, userID int64) ([]domain.Article, error) {
	return a.articleRepo.GetByUser(ctx, userID)
}

// Store persists the article, then fans out notifications to the
// author's followers. Fan-out runs synchronously on the request path; a
// failure surfaces to the caller, and because the ledger insert is
// idempotent the client may simply retry.
func (a *Service) Store(ctx context.Context, m *domain.Article) error {
	if err := a.articleRepo.Store(ctx, m); err != nil {
		return err
	}

	if err := a.bloomRepo.Add(ctx, m.ID); err != nil {
		logrus.Warnf("failed to add article %d to bloom filter: %v", m.ID, err)
	}

	return a.fanOut.Publish(ctx, m.ID, m.User.ID)
}

func (a *Service) Update(ctx context.Context, ar *domain.Article, requesterID int64) error {
	existing, err := a.articleRepo.GetByID(ctx, ar.ID)
	if err != nil {
		return err
	}
	if existing.User.ID != requesterID {
		return domain.ErrForbidden
	}

	if err := a.articleRepo.Update(ctx, ar); err != nil {
		return err
	}

	if err := a.articleCache.DeleteArticle(ctx, ar.ID); err != nil {
		logrus.Warnf("failed to evict article %d from cache: %v", ar.ID, err)
	}
	return nil
}

// Delete removes the article and cascades to its notifications, likes
// and comments. Only the owner may delete.
func (a *Service) Delete(ctx context.Context, id, requesterID int64) error {
	existing, err := a.articleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.User.ID != requesterID {
		return domain.ErrForbidden
	}

	if err := a.articleRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := a.articleCache.DeleteArticle(ctx, id); err != nil {
		logrus.Warnf("failed to evict article %d from cache: %v", id, err)
	}
	return nil
}

// ToggleLike delegates the serialized check-then-act to the repository.
// On ErrConflict (a concurrent double-submit lost the race on the unique
// index) the current state is re-read instead of re-incrementing.
func (a *Service) ToggleLike(ctx context.Context, userID, articleID int64) (int64, bool, error) {
	if err := a.mustExist(ctx, articleID); err != nil {
		return 0, false, err
	}

	likes, hasLiked, err := a.articleRepo.ToggleLike(ctx, userID, articleID)
	if errors.Is(err, domain.ErrConflict) {
		logrus.Warnf("like toggle conflict for user %d on article %d, re-reading state", userID, articleID)
		return a.articleRepo.LikeStatus(ctx, userID, articleID)
	}
	if err != nil {
		return 0, false, err
	}
	return likes, hasLiked, nil
}

func (a *Service) LikeStatus(ctx context.Context, userID, articleID int64) (int64, bool, error) {
	if err := a.mustExist(ctx, articleID); err != nil {
		return 0, false, err
	}
	return a.articleRepo.LikeStatus(ctx, userID, articleID)
}

func (a *Service) GetLikes(ctx context.Context, articleID int64) (int64, error) {
	if err := a.mustExist(ctx, articleID); err != nil {
		return 0, err
	}
	return a.articleRepo.GetLikes(ctx, articleID)
}

// mustExist answers a definite miss from the bloom filter without
// touching the store. Filter errors are ignored; the store stays
// authoritative.
func (a *Service) mustExist(ctx context.Context, id int64) error {
	exists, err := a.bloomRepo.Exists(ctx, id)
	if err == nil && !exists {
		return domain.ErrNotFound
	}
	return nil
}

// InitBloomFilter pages over every article ID at startup.
func (a *Service) InitBloomFilter(ctx context.Context) error {
	var cursor int64
	for {
		ids, err := a.articleRepo.FetchIDs(ctx, cursor, bloomWarmupBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := a.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
	}
}
