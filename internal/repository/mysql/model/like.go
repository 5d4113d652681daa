package model

import "time"

// Like has a composite unique index so the same user can never hold two
// like rows for one article, whatever the callers do.
type Like struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:userid;not null;uniqueIndex:uix_likes_user_article"`
	ArticleID int64     `gorm:"column:article_id;not null;uniqueIndex:uix_likes_user_article"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Like) TableName() string {
	return "likes"
}
