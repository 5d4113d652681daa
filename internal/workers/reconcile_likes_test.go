package workers_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain/mocks"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/workers"
)

func TestReconcileLikesWorker(t *testing.T) {
	mockRepo := new(mocks.ArticleRepository)

	var (
		mu    sync.Mutex
		calls int
	)
	mockRepo.On("RecountLikes", mock.Anything).Run(func(mock.Arguments) {
		mu.Lock()
		calls++
		mu.Unlock()
	}).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	w := workers.NewReconcileLikesWorker(mockRepo, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}
