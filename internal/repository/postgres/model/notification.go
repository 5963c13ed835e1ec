package model

import (
	"time"

	"github.com/postline/postline/domain"
)

// Notification rows cascade with the post and comment they reference, so
// deleting either never leaves stale notifications behind.
type Notification struct {
	ID        int64    `gorm:"primaryKey;autoIncrement"`
	UserID    string   `gorm:"column:user_id;size:64;not null;index"`
	Type      string   `gorm:"size:16;not null"`
	PostID    int64    `gorm:"column:post_id;not null"`
	Post      *Post    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CommentID int64    `gorm:"column:comment_id;not null"`
	Comment   *Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time
}

func (Notification) TableName() string {
	return "notifications"
}

func NewNotificationFromDomain(n domain.Notification) Notification {
	return Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		PostID:    n.PostID,
		CommentID: n.CommentID,
		CreatedAt: n.CreatedAt,
	}
}

func (m *Notification) ToDomain() domain.Notification {
	return domain.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      domain.NotificationType(m.Type),
		PostID:    m.PostID,
		CommentID: m.CommentID,
		CreatedAt: m.CreatedAt,
	}
}
