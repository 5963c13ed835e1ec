package domain

import (
	"context"
	"time"
)

// Comment is a single entry in a post's discussion thread.
// A nil ParentID marks a top-level comment; a non-nil ParentID references
// another comment on the same post. Likes is derived from the
// comment_likes relation, it is never stored on the comment row itself.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	ParentID  *int64    `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Likes 点赞该评论的用户集合
	Likes []string `json:"likes"`
	// Replies 子评论列表，读取时由 usecase 层组装。No omitempty: the
	// cached thread view must round-trip empty reply lists intact.
	Replies []*Comment `json:"replies"`
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	Create(ctx context.Context, c *Comment) error
	// FetchThread returns top-level comments with one level of replies.
	FetchThread(ctx context.Context, postID int64, limit, offset int) ([]*Comment, error)
	// FetchFullThread returns the whole comment forest of a post.
	FetchFullThread(ctx context.Context, postID int64) ([]*Comment, error)
	Delete(ctx context.Context, id int64) error
	ToggleLike(ctx context.Context, commentID int64, userID string) (*Comment, error)
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	// Store inserts the comment and backfills ID and CreatedAt.
	Store(ctx context.Context, c *Comment) error

	// GetByID retrieves a single comment annotated with its like set.
	// Returns ErrNotFound if the comment doesn't exist.
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// FetchTopLevel 获取一级评论, ordered by created_at ascending, each
	// annotated with its like set. Limit and offset are coerced to
	// defaults when out of range.
	FetchTopLevel(ctx context.Context, postID int64, limit, offset int) ([]*Comment, error)

	// FetchChildrenOf returns the direct replies of the given parents,
	// ordered by created_at ascending. An empty parent set returns an
	// empty result without touching the store.
	FetchChildrenOf(ctx context.Context, parentIDs []int64) ([]*Comment, error)

	// FetchAllByPost returns every comment of a post, ordered by
	// created_at ascending, each annotated with its like set.
	FetchAllByPost(ctx context.Context, postID int64) ([]*Comment, error)

	// DeleteSubtree removes the comment and all transitive descendants as
	// one atomic operation. Deleting an id that doesn't exist is a no-op.
	DeleteSubtree(ctx context.Context, id int64) error

	// ToggleLike flips userID's like membership on the comment and
	// reports whether the user likes the comment afterwards.
	ToggleLike(ctx context.Context, commentID int64, userID string) (bool, error)
}

// CommentCache caches assembled thread views per post.
type CommentCache interface {
	// GetThread returns ErrCacheMiss when no view is cached for the post.
	GetThread(ctx context.Context, postID int64) ([]*Comment, error)
	SetThread(ctx context.Context, postID int64, thread []*Comment) error
	DeleteThread(ctx context.Context, postID int64) error
}
