package domain

import (
	"context"
	"time"
)

// Bookmark is a (user, post) membership record.
type Bookmark struct {
	PostID    int64     `json:"post_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type BookmarkRepository interface {
	// Toggle flips the bookmark membership and reports whether the post
	// is bookmarked afterwards.
	Toggle(ctx context.Context, postID int64, userID string) (bool, error)

	// FetchPostIDsByUser returns the ids of a user's bookmarked posts,
	// most recently bookmarked first.
	FetchPostIDsByUser(ctx context.Context, userID string, limit, offset int) ([]int64, error)
}

type BookmarkUsecase interface {
	Toggle(ctx context.Context, postID int64, userID string) (bool, error)
	FetchPosts(ctx context.Context, userID string, limit, offset int) ([]Post, error)
}
