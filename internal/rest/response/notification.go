package response

import "github.com/Zhi-Yan1103/NZ-Discovery/domain"

type Notification struct {
	ID        int64  `json:"id"`
	ArticleID int64  `json:"article_id"`
	UserID    int64  `json:"userid"`
	IsRead    bool   `json:"is_read"`
	Title     string `json:"title"`
	Username  string `json:"username"`
}

func NewNotificationFromDomain(n *domain.Notification) Notification {
	return Notification{
		ID:        n.ID,
		ArticleID: n.ArticleID,
		UserID:    n.UserID,
		IsRead:    n.IsRead,
		Title:     n.Title,
		Username:  n.Username,
	}
}
