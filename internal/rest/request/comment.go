package request

import "github.com/postline/postline/domain"

type Comment struct {
	Content  string `json:"content" binding:"required" validate:"required"`
	ParentID *int64 `json:"parent_id"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain(postID int64, userID string) domain.Comment {
	return domain.Comment{
		PostID:   postID,
		UserID:   userID,
		Content:  r.Content,
		ParentID: r.ParentID,
	}
}
