package notification_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
	"github.com/Zhi-Yan1103/NZ-Discovery/domain/mocks"
	ucase "github.com/Zhi-Yan1103/NZ-Discovery/internal/usecase/notification"
)

func TestPublish(t *testing.T) {
	mockNotifyRepo := new(mocks.NotificationRepository)
	mockFollowRepo := new(mocks.FollowRepository)
	mockCache := new(mocks.NotificationCountCache)

	followers := []domain.User{
		{ID: 2, Username: "alice"},
		{ID: 3, Username: "bob"},
	}

	t.Run("success", func(t *testing.T) {
		mockFollowRepo.On("GetFollowers", mock.Anything, int64(1)).Return(followers, nil).Once()
		mockNotifyRepo.On("CreateForRecipients", mock.Anything, int64(10), []int64{2, 3}).Return(nil).Once()
		mockCache.On("Invalidate", mock.Anything, int64(2), int64(3)).Return(nil).Once()

		u := ucase.NewService(mockNotifyRepo, mockFollowRepo, mockCache)
		err := u.Publish(context.TODO(), 10, 1)

		assert.NoError(t, err)
		mockFollowRepo.AssertExpectations(t)
		mockNotifyRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("author-never-notified", func(t *testing.T) {
		// a self-edge in the graph must not produce a self-notification
		withSelf := append([]domain.User{{ID: 1, Username: "author"}}, followers...)
		mockFollowRepo.On("GetFollowers", mock.Anything, int64(1)).Return(withSelf, nil).Once()
		mockNotifyRepo.On("CreateForRecipients", mock.Anything, int64(10), []int64{2, 3}).Return(nil).Once()
		mockCache.On("Invalidate", mock.Anything, int64(2), int64(3)).Return(nil).Once()

		u := ucase.NewService(mockNotifyRepo, mockFollowRepo, mockCache)
		err := u.Publish(context.TODO(), 10, 1)

		assert.NoError(t, err)
		mockNotifyRepo.AssertExpectations(t)
	})

	t.Run("no-followers-is-noop", func(t *testing.T) {
		mockNotifyRepo := new(mocks.NotificationRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockCache := new(mocks.NotificationCountCache)
		mockFollowRepo.On("GetFollowers", mock.Anything, int64(1)).Return([]domain.User{}, nil).Once()

		u := ucase.NewService(mockNotifyRepo, mockFollowRepo, mockCache)
		err := u.Publish(context.TODO(), 10, 1)

		assert.NoError(t, err)
		mockNotifyRepo.AssertNotCalled(t, "CreateForRecipients", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ledger-error-surfaces", func(t *testing.T) {
		mockNotifyRepo := new(mocks.NotificationRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockCache := new(mocks.NotificationCountCache)
		mockFollowRepo.On("GetFollowers", mock.Anything, int64(1)).Return(followers, nil).Once()
		mockNotifyRepo.On("CreateForRecipients", mock.Anything, int64(10), []int64{2, 3}).
			Return(errors.New("insert failed")).Once()

		u := ucase.NewService(mockNotifyRepo, mockFollowRepo, mockCache)
		err := u.Publish(context.TODO(), 10, 1)

		assert.Error(t, err)
		mockCache.AssertNotCalled(t, "Invalidate", mock.Anything, int64(2), int64(3))
	})

	t.Run("cache-invalidation-failure-is-not-fatal", func(t *testing.T) {
		mockFollowRepo.On("GetFollowers", mock.Anything, int64(1)).Return(followers, nil).Once()
		mockNotifyRepo.On("CreateForRecipients", mock.Anything, int64(10), []int64{2, 3}).Return(nil).Once()
		mockCache.On("Invalidate", mock.Anything, int64(2), int64(3)).
			Return(errors.New("redis down")).Once()

		u := ucase.NewService(mockNotifyRepo, mockFollowRepo, mockCache)
		err := u.Publish(context.TODO(), 10, 1)

		assert.NoError(t, err)
	})
}

func TestMarkRead(t *testing.T) {
	t.Run("success-invalidates-counts", func(t *testing.T) {
		mockNotifyRepo := new(mocks.NotificationRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockCache := new(mocks.NotificationCountCache)

		mockNotifyRepo.On("MarkRead", mock.Anything, int64(7), int64(2)).Return(nil).Once()
		mockCache.On("Invalidate", mock.Anything, int64(2)).Return(nil).Once()

		u := ucase.NewService(mockNotifyRepo, mockFollowRepo, mockCache)
		err := u.MarkRead(context.TODO(), 7, 2)

		assert.NoError(t, err)
		mockNotifyRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("foreign-notification-is-not-found", func(t *testing.T) {
		mockNotifyRepo := new(mocks.NotificationRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockCache := new(mocks.NotificationCountCache)

		mockNotifyRepo.On("MarkRead", mock.Anything, int64(7), int64(99)).Return(domain.ErrNotFound).Once()

		u := ucase.NewService(mockNotifyRepo, mockFollowRepo, mockCache)
		err := u.MarkRead(context.TODO(), 7, 99)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockCache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})
}

func TestCounts(t *testing.T) {
	counts := domain.NotificationCounts{Total: 5, Unread: 2}

	t.Run("cache-hit", func(t *testing.T) {
		mockNotifyRepo := new(mocks.NotificationRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockCache := new(mocks.NotificationCountCache)

		mockCache.On("GetCounts", mock.Anything, int64(2)).Return(counts, nil).Once()

		u := ucase.NewService(mockNotifyRepo, mockFollowRepo, mockCache)
		got, err := u.Counts(context.TODO(), 2)

		assert.NoError(t, err)
		assert.Equal(t, counts, got)
		mockNotifyRepo.AssertNotCalled(t, "Counts", mock.Anything, mock.Anything)
	})

	t.Run("cache-miss-recomputes-from-ledger", func(t *testing.T) {
		mockNotifyRepo := new(mocks.NotificationRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockCache := new(mocks.NotificationCountCache)

		mockCache.On("GetCounts", mock.Anything, int64(2)).
			Return(domain.NotificationCounts{}, domain.ErrCacheMiss).Once()
		mockNotifyRepo.On("Counts", mock.Anything, int64(2)).Return(counts, nil).Once()
		mockCache.On("SetCounts", mock.Anything, int64(2), counts).Return(nil).Once()

		u := ucase.NewService(mockNotifyRepo, mockFollowRepo, mockCache)
		got, err := u.Counts(context.TODO(), 2)

		assert.NoError(t, err)
		assert.Equal(t, counts, got)
		mockNotifyRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("ledger-error-surfaces", func(t *testing.T) {
		mockNotifyRepo := new(mocks.NotificationRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockCache := new(mocks.NotificationCountCache)

		mockCache.On("GetCounts", mock.Anything, int64(2)).
			Return(domain.NotificationCounts{}, domain.ErrCacheMiss).Once()
		mockNotifyRepo.On("Counts", mock.Anything, int64(2)).
			Return(domain.NotificationCounts{}, errors.New("db down")).Once()

		u := ucase.NewService(mockNotifyRepo, mockFollowRepo, mockCache)
		_, err := u.Counts(context.TODO(), 2)

		assert.Error(t, err)
		mockCache.AssertNotCalled(t, "SetCounts", mock.Anything, mock.Anything, mock.Anything)
	})
}
