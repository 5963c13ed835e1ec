package comment

import "github.com/postline/postline/domain"

// DeriveRecipient computes the at-most-one notification a freshly created
// comment produces. A reply notifies the parent comment's author, a
// top-level comment notifies the post's author; nobody is notified about
// their own activity, and a missing parent or post yields nothing.
func DeriveRecipient(c *domain.Comment, parent *domain.Comment, post *domain.Post) *domain.Notification {
	if c.ParentID != nil {
		if parent == nil || parent.UserID == c.UserID {
			return nil
		}
		return &domain.Notification{
			UserID:    parent.UserID,
			Type:      domain.NotificationReply,
			PostID:    c.PostID,
			CommentID: c.ID,
		}
	}

	if post == nil || post.UserID == c.UserID {
		return nil
	}
	return &domain.Notification{
		UserID:    post.UserID,
		Type:      domain.NotificationComment,
		PostID:    c.PostID,
		CommentID: c.ID,
	}
}
