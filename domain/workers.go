package domain

import "context"

// FanoutWorker persists derived notifications in the background.
// Delivery is best effort: a full queue drops the notification, and a
// failed flush never affects the comment creation that produced it.
type FanoutWorker interface {
	Start(ctx context.Context)

	// Send enqueues a notification for batched persistence.
	Send(n Notification)
}
