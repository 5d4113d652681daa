package response

import "github.com/Zhi-Yan1103/NZ-Discovery/domain"

type Article struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	Image        string `json:"image,omitempty"`
	Username     string `json:"username"`
	AuthorAvatar string `json:"author_avatar,omitempty"`
	Likes        int64  `json:"likes"`
	UpdatedAt    string `json:"updated_at"`
	CreatedAt    string `json:"create_date"`
}

// NewArticleFromDomain: Domain -> Response
func NewArticleFromDomain(a *domain.Article) Article {
	return Article{
		ID:           a.ID,
		Title:        a.Title,
		Content:      a.Content,
		Image:        a.Image,
		Username:     a.User.Username,
		AuthorAvatar: a.User.AvatarURL,
		Likes:        a.Likes,
		UpdatedAt:    a.UpdatedAt.Format(DateTimeFormat),
		CreatedAt:    a.CreatedAt.Format(DateTimeFormat),
	}
}
