package model

import (
	"time"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
)

type Article struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(128);not null"`
	Content   string    `gorm:"type:longtext;not null"`
	Image     string    `gorm:"type:varchar(255)"`
	UserID    int64     `gorm:"column:userid;not null;index"`
	Likes     int64     `gorm:"default:0"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"column:create_date;type:datetime"`

	// Populated by joins, never written.
	Username  string `gorm:"->;-:migration"`
	AvatarURL string `gorm:"->;-:migration"`
}

func (Article) TableName() string {
	return "articles"
}

func (m *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:      m.ID,
		Title:   m.Title,
		Content: m.Content,
		Image:   m.Image,
		User: domain.User{
			ID:        m.UserID,
			Username:  m.Username,
			AvatarURL: m.AvatarURL,
		},
		Likes:     m.Likes,
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
	}
}

func NewArticleFromDomain(a *domain.Article) *Article {
	return &Article{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Image:     a.Image,
		UserID:    a.User.ID,
		Likes:     a.Likes,
		UpdatedAt: a.UpdatedAt,
		CreatedAt: a.CreatedAt,
	}
}
