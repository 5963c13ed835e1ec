package response

import "github.com/postline/postline/domain"

type Notification struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	PostID    int64  `json:"post_id"`
	CommentID int64  `json:"comment_id"`
	CreatedAt string `json:"created_at"`
}

// NewNotificationFromDomain: Domain -> Response
func NewNotificationFromDomain(n *domain.Notification) Notification {
	return Notification{
		ID:        n.ID,
		Type:      string(n.Type),
		PostID:    n.PostID,
		CommentID: n.CommentID,
		CreatedAt: n.CreatedAt.Format(DateTimeFormat),
	}
}
