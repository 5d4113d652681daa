package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/repository"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{db}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(&commentModel).Error; err != nil {
		return err
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	return nil
}

func (c *commentRepository) Delete(ctx context.Context, id int64) error {
	result := c.DB.WithContext(ctx).Delete(&model.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment model.Comment
	if err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	domainComment := comment.ToDomain()
	return &domainComment, nil
}

func (c *commentRepository) FetchRoots(ctx context.Context, articleID int64, cursor string, limit int64) ([]*domain.Comment, error) {
	decodedCursor, err := repository.DecodeCursor(cursor)
	if err != nil && cursor != "" {
		return nil, domain.ErrBadParamInput
	}
	repository.PageVerify(&limit)

	var comments []model.Comment
	err = c.DB.WithContext(ctx).
		Where("article_id = ? AND parent_id = 0 AND create_date > ?", articleID, decodedCursor).
		Limit(int(limit)).
		Order("create_date ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Comment, 0, len(comments))
	for _, comment := range comments {
		domainComment := comment.ToDomain()
		res = append(res, &domainComment)
	}
	return res, nil
}

func (c *commentRepository) FetchReplies(ctx context.Context, rootIDs []int64) ([]*domain.Comment, error) {
	if len(rootIDs) == 0 {
		return nil, nil
	}

	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("root_id IN ?", rootIDs).
		Order("create_date ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Comment, 0, len(comments))
	for _, comment := range comments {
		domainComment := comment.ToDomain()
		res = append(res, &domainComment)
	}
	return res, nil
}
