package domain

import (
	"context"
	"time"
)

// MaxCommentLength caps comment content at 140 characters. Longer
// content is a validation failure, not a server fault.
const MaxCommentLength = 140

// Comment domain model. A comment belongs to one article and may reply
// to a parent comment; RootID points at the top of its thread so a whole
// thread loads in one query.
type Comment struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	ParentID  int64     `json:"parent_id"`
	RootID    int64     `json:"root_id"`
	CreatedAt time.Time `json:"created_at"`

	// User is the comment author's info
	User *User `json:"user,omitempty"`
	// Replies holds the nested child comments
	Replies []*Comment `json:"replies,omitempty"`
}

// CommentUsecase defines comment business logic
type CommentUsecase interface {
	// Create stores the comment. Content over MaxCommentLength returns
	// ErrBadParamInput; an unknown article returns ErrNotFound.
	Create(ctx context.Context, c *Comment) error

	// Delete removes the comment with the given ID. Permitted only for
	// the comment's author or the hosting article's author; any other
	// requester gets ErrForbidden. A missing comment or article returns
	// ErrNotFound before any permission check.
	Delete(ctx context.Context, commentID, requesterID int64) error

	FetchByArticle(ctx context.Context, articleID int64, cursor string, limit int64) ([]*Comment, string, error)
}

// CommentRepository defines comment persistence
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	// FetchRoots retrieves top-level comments for an article
	FetchRoots(ctx context.Context, articleID int64, cursor string, limit int64) ([]*Comment, error)
	// FetchReplies retrieves every reply under the given root comment IDs
	FetchReplies(ctx context.Context, rootIDs []int64) ([]*Comment, error)
}
