package request

import "github.com/Zhi-Yan1103/NZ-Discovery/domain"

type Comment struct {
	ArticleID int64  `json:"article_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
	ParentID  int64  `json:"parent_id"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ArticleID: r.ArticleID,
		Content:   r.Content,
		ParentID:  r.ParentID,
	}
}
