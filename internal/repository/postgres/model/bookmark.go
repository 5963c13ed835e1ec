package model

import "time"

type Bookmark struct {
	PostID    int64  `gorm:"column:post_id;primaryKey;autoIncrement:false"`
	Post      *Post  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	UserID    string `gorm:"column:user_id;primaryKey;size:64"`
	CreatedAt time.Time
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
