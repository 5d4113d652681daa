package domain

import "context"

type BloomRepository interface {
	// Add puts an article ID into the filter
	Add(ctx context.Context, id int64) error

	// Exists checks whether the ID may exist.
	// true: possibly exists (check cache/DB next)
	// false: definitely absent (answer 404 directly)
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd loads many IDs at once, used at warm-up
	BulkAdd(ctx context.Context, ids []int64) error
}
