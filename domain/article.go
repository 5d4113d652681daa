package domain

import (
	"context"
	"time"
)

// Article is representing the Article data struct
type Article struct {
	ID        int64     // Unique identifier for the article
	Title     string    // Article title
	Content   string    // Article body content
	Image     string    // Stored image reference, empty when none
	User      User      // Author information
	Likes     int64     // Denormalized like counter, kept in sync with the likes rows
	UpdatedAt time.Time // Last update timestamp
	CreatedAt time.Time // Creation timestamp
}

// ArticleRepository defines the contract for article data persistence,
// including the like toggle whose check-then-act sequence must run
// inside one transaction.
type ArticleRepository interface {
	// FetchAll retrieves every article joined with its author, ordered
	// by the given column ("date", "title" or "username") and order
	// ("asc"/"desc"). Invalid values fall back to date descending.
	FetchAll(ctx context.Context, sortBy, sortOrder string) ([]Article, error)

	// Search filters the joined article list by a case-insensitive
	// substring match over title, content and author username, with the
	// same ordering rules as FetchAll.
	Search(ctx context.Context, query, sortBy, sortOrder string) ([]Article, error)

	// GetByID retrieves a single article by its ID.
	// Returns ErrNotFound if the article doesn't exist.
	GetByID(ctx context.Context, id int64) (Article, error)

	// GetByUser retrieves the articles authored by userID, newest first.
	GetByUser(ctx context.Context, userID int64) ([]Article, error)

	// Store creates a new article and backfills its ID and timestamps.
	Store(ctx context.Context, a *Article) error

	// Update modifies an existing article.
	// Returns ErrNotFound if the article doesn't exist.
	Update(ctx context.Context, a *Article) error

	// Delete removes an article together with its notifications, likes
	// and comments in one transaction.
	// Returns ErrNotFound if not exists.
	Delete(ctx context.Context, id int64) error

	// ToggleLike flips the (user, article) like state: inserts the like
	// row and increments the counter, or deletes it and decrements. The
	// whole sequence runs in a transaction with the article row locked,
	// and the unique (userid, article_id) index is the backstop against
	// concurrent double-inserts (surfaced as ErrConflict).
	// Returns the new counter value and whether the user now likes it.
	ToggleLike(ctx context.Context, userID, articleID int64) (likes int64, hasLiked bool, err error)

	// LikeStatus reports the current counter and whether userID has
	// liked the article, without mutating anything.
	LikeStatus(ctx context.Context, userID, articleID int64) (likes int64, hasLiked bool, err error)

	// GetLikes returns the article's like counter.
	GetLikes(ctx context.Context, articleID int64) (int64, error)

	// RecountLikes rewrites every article's counter from the live count
	// of its like rows. Used by the reconciliation worker; the stored
	// counter is a cache, the like rows are the source of truth.
	RecountLikes(ctx context.Context) error

	// FetchIDs pages over article IDs, for bloom filter warm-up.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// ArticleCache is the Redis read-side cache for single articles.
type ArticleCache interface {
	GetArticle(ctx context.Context, id int64) (Article, error)
	SetArticle(ctx context.Context, a *Article) error
	DeleteArticle(ctx context.Context, id int64) error
}

// FanOut is consumed by the article service at publish time. Implemented
// by the notification service.
type FanOut interface {
	Publish(ctx context.Context, articleID, authorID int64) error
}

type ArticleUsecase interface {
	FetchAll(ctx context.Context, sortBy, sortOrder string) ([]Article, error)

	// Search answers an empty list for a blank query without touching
	// the store.
	Search(ctx context.Context, query, sortBy, sortOrder string) ([]Article, error)

	GetByID(ctx context.Context, id int64) (Article, error)
	GetByUser(ctx context.Context, userID int64) ([]Article, error)

	// Store persists the article and fans out notifications to the
	// author's followers. Fan-out failure surfaces as an error; the
	// article stays stored and a retried publish is idempotent.
	Store(ctx context.Context, a *Article) error

	// Update modifies the article. Only the owner may update.
	Update(ctx context.Context, a *Article, requesterID int64) error

	// Delete removes the article and its dependent rows. Only the owner
	// may delete.
	Delete(ctx context.Context, id, requesterID int64) error

	ToggleLike(ctx context.Context, userID, articleID int64) (likes int64, hasLiked bool, err error)
	LikeStatus(ctx context.Context, userID, articleID int64) (likes int64, hasLiked bool, err error)
	GetLikes(ctx context.Context, articleID int64) (int64, error)

	InitBloomFilter(ctx context.Context) error
}
