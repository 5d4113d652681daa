package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/repository/mysql/model"
)

type followRepository struct {
	DB *gorm.DB
}

var _ domain.FollowRepository = (*followRepository)(nil)

func NewFollowRepository(db *gorm.DB) *followRepository {
	return &followRepository{db}
}

func (m *followRepository) Create(ctx context.Context, followerID, followedID int64) error {
	follow := model.Follow{
		FollowerID: followerID,
		FollowedID: followedID,
	}
	if err := m.DB.WithContext(ctx).Create(&follow).Error; err != nil {
		if isDuplicateEntry(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (m *followRepository) Delete(ctx context.Context, followerID, followedID int64) error {
	result := m.DB.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&model.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *followRepository) Exists(ctx context.Context, followerID, followedID int64) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

// GetFollowers projects the users following userID. No followers is an
// empty slice, not an error.
func (m *followRepository) GetFollowers(ctx context.Context, userID int64) ([]domain.User, error) {
	return m.projectUsers(ctx, m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Select("follower_id").
		Where("followed_id = ?", userID))
}

func (m *followRepository) GetFollowings(ctx context.Context, userID int64) ([]domain.User, error) {
	return m.projectUsers(ctx, m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Select("followed_id").
		Where("follower_id = ?", userID))
}

func (m *followRepository) projectUsers(ctx context.Context, subquery *gorm.DB) ([]domain.User, error) {
	var users []model.User
	err := m.DB.WithContext(ctx).
		Where("id IN (?)", subquery).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, nil
}
