package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/postline/postline/domain"
)

const (
	fanoutQueueSize     = 1024
	fanoutBatchSize     = 100
	fanoutFlushInterval = 1 * time.Second
	fanoutDrainTimeout  = 5 * time.Second
)

// fanoutWorker batches derived notifications and writes them in bulk.
// Comment creation only enqueues; persistence failures are logged and
// never propagate back to the create path.
type fanoutWorker struct {
	notificationRepo domain.NotificationRepository
	ch               chan domain.Notification
}

var _ domain.FanoutWorker = (*fanoutWorker)(nil)

func NewFanoutWorker(repo domain.NotificationRepository) *fanoutWorker {
	return &fanoutWorker{
		notificationRepo: repo,
		ch:               make(chan domain.Notification, fanoutQueueSize),
	}
}

// Send enqueues the notification, dropping it when the queue is full.
func (w *fanoutWorker) Send(n domain.Notification) {
	select {
	case w.ch <- n:
	default:
		logrus.Warnf("fanout queue is full, notification for %s dropped", n.UserID)
	}
}

func (w *fanoutWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(fanoutFlushInterval)
	defer ticker.Stop()

	batch := make([]domain.Notification, 0, fanoutBatchSize)
	for {
		select {
		case n := <-w.ch:
			batch = append(batch, n)
			if len(batch) == fanoutBatchSize {
				w.flush(ctx, batch)
				batch = make([]domain.Notification, 0, fanoutBatchSize)
			}
		case <-ticker.C:
			w.flush(ctx, batch)
			batch = make([]domain.Notification, 0, fanoutBatchSize)
		case <-ctx.Done():
			logrus.Info("shutting down fanout worker, flushing remaining notifications...")
			w.drain(batch)
			return
		}
	}
}

// drain empties the queue and flushes everything with a fresh context,
// the shutdown one is already cancelled.
func (w *fanoutWorker) drain(batch []domain.Notification) {
	for {
		select {
		case n := <-w.ch:
			batch = append(batch, n)
		default:
			ctx, cancel := context.WithTimeout(context.Background(), fanoutDrainTimeout)
			defer cancel()
			w.flush(ctx, batch)
			return
		}
	}
}

func (w *fanoutWorker) flush(ctx context.Context, batch []domain.Notification) {
	if len(batch) == 0 {
		return
	}
	if err := w.notificationRepo.StoreBatch(ctx, batch); err != nil {
		logrus.Errorf("failed to store %d notifications: %v", len(batch), err)
	}
}
