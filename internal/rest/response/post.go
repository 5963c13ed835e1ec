package response

import "github.com/postline/postline/domain"

type Post struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	UserID    string   `json:"user_id"`
	Tags      []string `json:"tags"`
	Category  *string  `json:"category"`
	Likes     []string `json:"likes"`
	CreatedAt string   `json:"created_at"`
}

// NewPostFromDomain: Domain -> Response
func NewPostFromDomain(p *domain.Post) Post {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	likes := p.Likes
	if likes == nil {
		likes = []string{}
	}
	return Post{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		UserID:    p.UserID,
		Tags:      tags,
		Category:  p.Category,
		Likes:     likes,
		CreatedAt: p.CreatedAt.Format(DateTimeFormat),
	}
}
