package notification

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
)

// Service is the notification ledger and the fan-out engine on top of it.
type Service struct {
	notifyRepo  domain.NotificationRepository
	followRepo  domain.FollowRepository
	countsCache domain.NotificationCountCache
}

var _ domain.NotificationUsecase = (*Service)(nil)
var _ domain.FanOut = (*Service)(nil)

func NewService(n domain.NotificationRepository, f domain.FollowRepository, c domain.NotificationCountCache) *Service {
	return &Service{
		notifyRepo:  n,
		followRepo:  f,
		countsCache: c,
	}
}

// Publish expands one article-publish event into one unread notification
// per follower. The follower set is snapshotted once; a follower who
// unfollows mid-flight may still be notified. The author is stripped even
// if the graph were to hold a self-edge, and the ledger's unique index
// keeps a retried publish from double-notifying.
func (s *Service) Publish(ctx context.Context, articleID, authorID int64) error {
	followers, err := s.followRepo.GetFollowers(ctx, authorID)
	if err != nil {
		return err
	}
	if len(followers) == 0 {
		return nil
	}

	recipientIDs := make([]int64, 0, len(followers))
	for _, follower := range followers {
		if follower.ID == authorID {
			continue
		}
		recipientIDs = append(recipientIDs, follower.ID)
	}

	if err := s.notifyRepo.CreateForRecipients(ctx, articleID, recipientIDs); err != nil {
		return err
	}

	if err := s.countsCache.Invalidate(ctx, recipientIDs...); err != nil {
		logrus.Warnf("failed to invalidate count cache after fan-out: %v", err)
	}
	return nil
}

func (s *Service) FetchByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return s.notifyRepo.FetchByUser(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, id, userID int64) error {
	if err := s.notifyRepo.MarkRead(ctx, id, userID); err != nil {
		return err
	}
	if err := s.countsCache.Invalidate(ctx, userID); err != nil {
		logrus.Warnf("failed to invalidate count cache after mark-read: %v", err)
	}
	return nil
}

// Counts serves the poll endpoint. The cache only shadows the ledger
// aggregate: recomputed on miss, invalidated on every write.
func (s *Service) Counts(ctx context.Context, userID int64) (domain.NotificationCounts, error) {
	counts, err := s.countsCache.GetCounts(ctx, userID)
	if err == nil {
		return counts, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("count cache get error: %v", err)
	}

	counts, err = s.notifyRepo.Counts(ctx, userID)
	if err != nil {
		return domain.NotificationCounts{}, err
	}

	if err := s.countsCache.SetCounts(ctx, userID, counts); err != nil {
		logrus.Warnf("failed to set count cache: %v", err)
	}
	return counts, nil
}
