package mysql

import (
	"context"
	"errors"
	"strings"

	driver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/repository/mysql/model"
)

type articleRepository struct {
	DB *gorm.DB
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

func NewArticleRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{db}
}

const mysqlDuplicateEntry = 1062

func isDuplicateEntry(err error) bool {
	var mysqlErr *driver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// resolveOrder maps the public sort params onto join columns. Anything
// unrecognized falls back to newest first.
func resolveOrder(sortBy, sortOrder string) string {
	orderColumns := map[string]string{
		"date":     "articles.create_date",
		"title":    "articles.title",
		"username": "users.username",
	}
	column, ok := orderColumns[sortBy]
	if !ok {
		column = orderColumns["date"]
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}
	return column + " " + sortOrder
}

func (m *articleRepository) FetchAll(ctx context.Context, sortBy, sortOrder string) (res []domain.Article, err error) {
	var articles []model.Article
	err = m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Select("articles.*, users.username, users.avatar_url").
		Joins("JOIN users ON users.id = articles.userid").
		Order(resolveOrder(sortBy, sortOrder)).
		Find(&articles).Error
	if err != nil {
		return
	}

	res = make([]domain.Article, len(articles))
	for i := range articles {
		res[i] = articles[i].ToDomain()
	}
	return
}

// Search filters the same article/author join by a case-insensitive
// substring over title, content and author username.
func (m *articleRepository) Search(ctx context.Context, query, sortBy, sortOrder string) ([]domain.Article, error) {
	term := "%" + strings.ToLower(query) + "%"

	var articles []model.Article
	err := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Select("articles.*, users.username, users.avatar_url").
		Joins("JOIN users ON users.id = articles.userid").
		Where("LOWER(articles.title) LIKE ? OR LOWER(articles.content) LIKE ? OR LOWER(users.username) LIKE ?",
			term, term, term).
		Order(resolveOrder(sortBy, sortOrder)).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Article, len(articles))
	for i := range articles {
		res[i] = articles[i].ToDomain()
	}
	return res, nil
}

func (m *articleRepository) GetByID(ctx context.Context, id int64) (res domain.Article, err error) {
	var article model.Article
	err = m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Select("articles.*, users.username, users.avatar_url").
		Joins("JOIN users ON users.id = articles.userid").
		First(&article, "articles.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, domain.ErrNotFound
		}
		return res, err
	}
	res = article.ToDomain()
	return
}

func (m *articleRepository) GetByUser(ctx context.Context, userID int64) ([]domain.Article, error) {
	var articles []model.Article
	err := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Select("articles.*, users.username, users.avatar_url").
		Joins("JOIN users ON users.id = articles.userid").
		Where("articles.userid = ?", userID).
		Order("articles.create_date DESC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Article, len(articles))
	for i := range articles {
		res[i] = articles[i].ToDomain()
	}
	return res, nil
}

func (m *articleRepository) Store(ctx context.Context, a *domain.Article) error {
	articleModel := model.NewArticleFromDomain(a)
	result := m.DB.WithContext(ctx).Create(&articleModel)
	if result.Error != nil {
		return result.Error
	}
	a.ID = articleModel.ID
	a.CreatedAt = articleModel.CreatedAt
	a.UpdatedAt = articleModel.UpdatedAt
	return nil
}

func (m *articleRepository) Update(ctx context.Context, a *domain.Article) error {
	articleModel := model.NewArticleFromDomain(a)
	result := m.DB.WithContext(ctx).Model(&articleModel).
		Select("title", "content", "image", "updated_at").
		Updates(&articleModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete cascades to the article's notifications, likes and comments so
// no orphan rows survive, all inside one transaction.
func (m *articleRepository) Delete(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Article{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if err := tx.Where("article_id = ?", id).Delete(&model.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("article_id = ?", id).Delete(&model.Comment{}).Error
	})
}

// ToggleLike serializes concurrent toggles on the same article by locking
// the article row for the duration of the transaction, so two requests can
// never both observe "not liked". The unique (userid, article_id) index is
// the backstop if a duplicate insert slips through anyway.
func (m *articleRepository) ToggleLike(ctx context.Context, userID, articleID int64) (likes int64, hasLiked bool, err error) {
	err = m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var article model.Article
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&article, "id = ?", articleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&model.Like{}).
			Where("userid = ? AND article_id = ?", userID, articleID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			if err := tx.Where("userid = ? AND article_id = ?", userID, articleID).
				Delete(&model.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Article{}).Where("id = ?", articleID).
				UpdateColumn("likes", gorm.Expr("likes - 1")).Error; err != nil {
				return err
			}
			hasLiked = false
		} else {
			like := model.Like{UserID: userID, ArticleID: articleID}
			if err := tx.Create(&like).Error; err != nil {
				if isDuplicateEntry(err) {
					return domain.ErrConflict
				}
				return err
			}
			if err := tx.Model(&model.Article{}).Where("id = ?", articleID).
				UpdateColumn("likes", gorm.Expr("likes + 1")).Error; err != nil {
				return err
			}
			hasLiked = true
		}

		var updated model.Article
		if err := tx.Select("likes").First(&updated, "id = ?", articleID).Error; err != nil {
			return err
		}
		likes = updated.Likes
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return likes, hasLiked, nil
}

func (m *articleRepository) LikeStatus(ctx context.Context, userID, articleID int64) (likes int64, hasLiked bool, err error) {
	var article model.Article
	err = m.DB.WithContext(ctx).Select("likes").First(&article, "id = ?", articleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, domain.ErrNotFound
		}
		return 0, false, err
	}

	var count int64
	err = m.DB.WithContext(ctx).Model(&model.Like{}).
		Where("userid = ? AND article_id = ?", userID, articleID).
		Count(&count).Error
	if err != nil {
		return 0, false, err
	}
	return article.Likes, count > 0, nil
}

func (m *articleRepository) GetLikes(ctx context.Context, articleID int64) (int64, error) {
	var article model.Article
	err := m.DB.WithContext(ctx).Select("likes").First(&article, "id = ?", articleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return article.Likes, nil
}

// RecountLikes rewrites each counter from the live like rows. The stored
// counter is a cache; this is the consistency check that re-derives it.
func (m *articleRepository) RecountLikes(ctx context.Context) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Exec(
			"UPDATE articles SET likes = (SELECT COUNT(*) FROM likes WHERE likes.article_id = articles.id)",
		).Error
	})
}

func (m *articleRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}
