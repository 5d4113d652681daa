package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
)

const defaultReconcileInterval = 10 * time.Minute

// reconcileLikesWorker periodically re-derives every article's like
// counter from the likes rows. The toggle path keeps both in sync
// transactionally; this worker is the safety net that repairs any drift
// (manual edits, partially restored backups) because only the rows are
// the source of truth.
type reconcileLikesWorker struct {
	articleRepo domain.ArticleRepository
	interval    time.Duration
}

func NewReconcileLikesWorker(ar domain.ArticleRepository, interval time.Duration) *reconcileLikesWorker {
	if interval <= 0 {
		interval = defaultReconcileInterval
	}
	return &reconcileLikesWorker{
		articleRepo: ar,
		interval:    interval,
	}
}

func (w *reconcileLikesWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.reconcile(ctx)
		case <-ctx.Done():
			logrus.Info("shutting down reconcileLikesWorker")
			return
		}
	}
}

func (w *reconcileLikesWorker) reconcile(ctx context.Context) {
	if err := w.articleRepo.RecountLikes(ctx); err != nil {
		logrus.Errorf("failed to reconcile like counters: %v", err)
	}
}
