package model

// Notification is a ledger row. The composite unique index on
// (article_id, userid) makes fan-out idempotent: a retried publish hits
// the index instead of inserting a duplicate.
type Notification struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	ArticleID int64 `gorm:"column:article_id;not null;uniqueIndex:uix_notify_article_user"`
	UserID    int64 `gorm:"column:userid;not null;index;uniqueIndex:uix_notify_article_user"`
	IsRead    bool  `gorm:"column:is_read;not null"`
}

func (Notification) TableName() string {
	return "notify"
}
