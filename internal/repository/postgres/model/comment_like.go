package model

import "time"

// CommentLike is a membership pair, not a counter. The composite primary
// key is the uniqueness constraint that makes the like toggle race-safe.
type CommentLike struct {
	CommentID int64    `gorm:"column:comment_id;primaryKey;autoIncrement:false"`
	Comment   *Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	UserID    string   `gorm:"column:user_id;primaryKey;size:64"`
	CreatedAt time.Time
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
