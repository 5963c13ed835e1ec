package response

import "github.com/postline/postline/domain"

type Comment struct {
	ID        int64    `json:"id"`
	PostID    int64    `json:"post_id"`
	UserID    string   `json:"user_id"`
	Content   string   `json:"content"`
	ParentID  *int64   `json:"parent_id,omitempty"`
	Likes     []string `json:"likes"`
	CreatedAt string   `json:"created_at"`

	// Replies 子评论列表
	Replies []*Comment `json:"replies"`
}

func NewSingleCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	likes := c.Likes
	if likes == nil {
		likes = []string{}
	}
	return &Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		Likes:     likes,
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
		Replies:   []*Comment{},
	}
}

// NewCommentFromDomain: Domain -> Response, nested replies included.
func NewCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	root := NewSingleCommentFromDomain(c)
	for _, r := range c.Replies {
		root.Replies = append(root.Replies, NewCommentFromDomain(r))
	}
	return root
}

func NewCommentsFromDomain(cs []*domain.Comment) []*Comment {
	res := make([]*Comment, 0, len(cs))
	for _, c := range cs {
		res = append(res, NewCommentFromDomain(c))
	}
	return res
}
