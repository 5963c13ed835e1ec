package request

import "github.com/postline/postline/domain"

type Post struct {
	Title    string   `json:"title" binding:"required" validate:"required"`
	Content  string   `json:"content" binding:"required" validate:"required"`
	Tags     []string `json:"tags"`
	Category *string  `json:"category"`
}

// ToDomain: Request -> Domain
func (r *Post) ToDomain(userID string) domain.Post {
	return domain.Post{
		Title:    r.Title,
		Content:  r.Content,
		UserID:   userID,
		Tags:     r.Tags,
		Category: r.Category,
		Likes:    []string{},
	}
}
