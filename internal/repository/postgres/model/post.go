package model

import (
	"time"

	"github.com/lib/pq"

	"github.com/postline/postline/domain"
)

type Post struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	Title     string         `gorm:"size:255;not null"`
	Content   string         `gorm:"type:text;not null"`
	UserID    string         `gorm:"column:user_id;size:64;not null;index"`
	Tags      pq.StringArray `gorm:"type:text[]"`
	Category  *string        `gorm:"size:64"`
	Likes     pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt time.Time
}

func (Post) TableName() string {
	return "posts"
}

func NewPostFromDomain(p *domain.Post) *Post {
	return &Post{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		UserID:    p.UserID,
		Tags:      pq.StringArray(p.Tags),
		Category:  p.Category,
		Likes:     pq.StringArray(p.Likes),
		CreatedAt: p.CreatedAt,
	}
}

func (m *Post) ToDomain() domain.Post {
	likes := []string(m.Likes)
	if likes == nil {
		likes = []string{}
	}
	return domain.Post{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		UserID:    m.UserID,
		Tags:      []string(m.Tags),
		Category:  m.Category,
		Likes:     likes,
		CreatedAt: m.CreatedAt,
	}
}
