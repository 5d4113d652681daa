package domain

import "context"

// Notification is one row of the notification ledger: an unread/read
// marker telling a follower that an article was published. Rows are
// created in bulk at publish time and only ever transition unread->read.
type Notification struct {
	ID        int64 `json:"id"`
	ArticleID int64 `json:"article_id"`
	UserID    int64 `json:"userid"` // recipient
	IsRead    bool  `json:"is_read"`

	// Joined view fields for the list endpoint.
	Title    string `json:"title"`    // article title
	Username string `json:"username"` // triggering author's username
}

// NotificationCounts is the aggregate view over one user's ledger slice.
type NotificationCounts struct {
	Total  int64 `json:"totalCount"`
	Unread int64 `json:"unreadCount"`
}

// NotificationRepository owns the notification ledger.
type NotificationRepository interface {
	// CreateForRecipients inserts one unread notification per recipient
	// in a single transaction. The recipient set is deduplicated and a
	// unique (article_id, userid) index drops rows that already exist,
	// so a retried publish never double-notifies. An empty recipient set
	// is a no-op.
	CreateForRecipients(ctx context.Context, articleID int64, recipientIDs []int64) error

	// FetchByUser returns the user's notifications joined with the
	// article title and the author's username, newest article first
	// (article_id DESC, id DESC).
	FetchByUser(ctx context.Context, userID int64) ([]Notification, error)

	// MarkRead flips the notification to read. Idempotent: marking an
	// already-read notification succeeds. Returns ErrNotFound when the
	// notification doesn't exist or belongs to another user.
	MarkRead(ctx context.Context, id, userID int64) error

	// Counts aggregates total and unread over the ledger. Always derived
	// from the rows, never from a separately maintained counter.
	Counts(ctx context.Context, userID int64) (NotificationCounts, error)
}

// NotificationCountCache shadows the Counts aggregate in Redis. It is a
// derived view: invalidated on every ledger write and recomputed from
// the ledger on miss.
type NotificationCountCache interface {
	GetCounts(ctx context.Context, userID int64) (NotificationCounts, error)
	SetCounts(ctx context.Context, userID int64, counts NotificationCounts) error
	Invalidate(ctx context.Context, userIDs ...int64) error
}

// NotificationUsecase is the ledger plus the fan-out engine.
type NotificationUsecase interface {
	// Publish expands the author's follower set into one unread
	// notification per follower. The author never receives one, even if
	// the graph were to contain a self-edge. Safe to retry.
	Publish(ctx context.Context, articleID, authorID int64) error

	FetchByUser(ctx context.Context, userID int64) ([]Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
	Counts(ctx context.Context, userID int64) (NotificationCounts, error)
}
