package domain

import (
	"context"
	"time"
)

type NotificationType string

const (
	// NotificationComment 有人评论了你的帖子
	NotificationComment NotificationType = "comment"
	// NotificationReply 有人回复了你的评论
	NotificationReply NotificationType = "reply"
)

// Notification is written once as a side effect of comment creation and
// never mutated. UserID is the recipient, CommentID the comment that
// triggered it.
type Notification struct {
	ID        int64            `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	PostID    int64            `json:"post_id"`
	CommentID int64            `json:"comment_id"`
	CreatedAt time.Time        `json:"created_at"`
}

type NotificationRepository interface {
	// StoreBatch persists a batch of notifications in one round trip.
	StoreBatch(ctx context.Context, ns []Notification) error

	// FetchByUser returns a user's notifications, newest first.
	FetchByUser(ctx context.Context, userID string, limit, offset int) ([]Notification, error)
}

type NotificationUsecase interface {
	FetchByUser(ctx context.Context, userID string, limit, offset int) ([]Notification, error)
}
