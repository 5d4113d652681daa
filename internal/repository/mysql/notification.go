package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/repository/mysql/model"
)

type notificationRepository struct {
	DB *gorm.DB
}

var _ domain.NotificationRepository = (*notificationRepository)(nil)

func NewNotificationRepository(db *gorm.DB) *notificationRepository {
	return &notificationRepository{db}
}

// CreateForRecipients inserts the whole fan-out batch in one transaction:
// either every row commits or none does. DoNothing on the unique
// (article_id, userid) index keeps a retried publish from double-notifying
// without failing the batch.
func (r *notificationRepository) CreateForRecipients(ctx context.Context, articleID int64, recipientIDs []int64) error {
	if len(recipientIDs) == 0 {
		return nil
	}

	seen := make(map[int64]bool, len(recipientIDs))
	rows := make([]model.Notification, 0, len(recipientIDs))
	for _, uid := range recipientIDs {
		if seen[uid] {
			continue
		}
		seen[uid] = true
		rows = append(rows, model.Notification{
			ArticleID: articleID,
			UserID:    uid,
			IsRead:    false,
		})
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	})
}

// notificationRow carries the joined view of a ledger row.
type notificationRow struct {
	ID        int64
	ArticleID int64
	UserID    int64
	IsRead    bool
	Title     string
	Username  string
}

// FetchByUser keeps the original newest-article-first ordering: article
// IDs are monotone and no per-row timestamp is stored, so article_id DESC
// with id DESC as tiebreak is the creation order.
func (r *notificationRepository) FetchByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	var rows []notificationRow
	err := r.DB.WithContext(ctx).
		Table("notify").
		Select("notify.id, notify.article_id, notify.userid AS user_id, notify.is_read, articles.title, users.username").
		Joins("JOIN articles ON articles.id = notify.article_id").
		Joins("JOIN users ON users.id = articles.userid").
		Where("notify.userid = ?", userID).
		Order("notify.article_id DESC, notify.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Notification, len(rows))
	for i, row := range rows {
		res[i] = domain.Notification{
			ID:        row.ID,
			ArticleID: row.ArticleID,
			UserID:    row.UserID,
			IsRead:    row.IsRead,
			Title:     row.Title,
			Username:  row.Username,
		}
	}
	return res, nil
}

// MarkRead is idempotent and ownership-checked: a notification owned by
// someone else reports ErrNotFound rather than revealing it exists.
func (r *notificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	var row model.Notification
	err := r.DB.WithContext(ctx).First(&row, "id = ? AND userid = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if row.IsRead {
		return nil
	}
	return r.DB.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

// Counts aggregates over the ledger rows in one query; there is no
// stored counter to drift.
func (r *notificationRepository) Counts(ctx context.Context, userID int64) (domain.NotificationCounts, error) {
	var row struct {
		Total  int64
		Unread int64
	}
	err := r.DB.WithContext(ctx).
		Model(&model.Notification{}).
		Select("COUNT(*) AS total, COALESCE(SUM(is_read = FALSE), 0) AS unread").
		Where("userid = ?", userID).
		Scan(&row).Error
	if err != nil {
		return domain.NotificationCounts{}, err
	}
	return domain.NotificationCounts{Total: row.Total, Unread: row.Unread}, nil
}
