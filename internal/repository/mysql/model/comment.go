package model

import (
	"time"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ArticleID int64     `gorm:"column:article_id;not null;index"`
	UserID    int64     `gorm:"column:userid;not null"`
	Content   string    `gorm:"type:varchar(140);not null"`
	ParentID  int64     `gorm:"column:parent_id;default:0"`
	RootID    int64     `gorm:"column:root_id;default:0;index"`
	CreatedAt time.Time `gorm:"column:create_date;type:datetime"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		UserID:    c.UserID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		RootID:    c.RootID,
		CreatedAt: c.CreatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		ArticleID: m.ArticleID,
		UserID:    m.UserID,
		Content:   m.Content,
		ParentID:  m.ParentID,
		RootID:    m.RootID,
		CreatedAt: m.CreatedAt,
	}
}
