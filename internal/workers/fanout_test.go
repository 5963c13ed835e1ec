package workers_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/postline/postline/domain"
	"github.com/postline/postline/domain/mocks"
	"github.com/postline/postline/internal/workers"
)

func TestFanoutFlushesOnInterval(t *testing.T) {
	repo := new(mocks.NotificationRepository)

	var mu sync.Mutex
	var stored []domain.Notification
	repo.On("StoreBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			mu.Lock()
			defer mu.Unlock()
			stored = append(stored, args.Get(1).([]domain.Notification)...)
		}).
		Return(nil)

	w := workers.NewFanoutWorker(repo)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	w.Send(domain.Notification{UserID: "u1", Type: domain.NotificationComment, PostID: 1, CommentID: 10})
	w.Send(domain.Notification{UserID: "u2", Type: domain.NotificationReply, PostID: 1, CommentID: 11})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(stored) == 2
	}, 5*time.Second, 50*time.Millisecond)
}

func TestFanoutDrainsOnShutdown(t *testing.T) {
	repo := new(mocks.NotificationRepository)

	var mu sync.Mutex
	var stored []domain.Notification
	repo.On("StoreBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			mu.Lock()
			defer mu.Unlock()
			stored = append(stored, args.Get(1).([]domain.Notification)...)
		}).
		Return(nil)

	w := workers.NewFanoutWorker(repo)
	ctx, cancel := context.WithCancel(context.Background())

	w.Send(domain.Notification{UserID: "u1", Type: domain.NotificationComment, PostID: 1, CommentID: 10})

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, stored, 1)
	assert.Equal(t, "u1", stored[0].UserID)
}

func TestFanoutSendNeverBlocks(t *testing.T) {
	// worker not started: the queue fills up and extra sends are dropped
	w := workers.NewFanoutWorker(new(mocks.NotificationRepository))

	done := make(chan struct{})
	go func() {
		for i := 0; i < 3000; i++ {
			w.Send(domain.Notification{UserID: "u1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Send blocked on a full queue")
	}
}
