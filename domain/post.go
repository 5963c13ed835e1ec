package domain

import (
	"context"
	"time"
)

// Post is representing the Post data struct.
// Likes is stored as a literal array on the post row. Category is
// optional; Tags may be empty.
type Post struct {
	ID        int64     `json:"id"`        // Unique identifier for the post
	Title     string    `json:"title"`     // Post title
	Content   string    `json:"content"`   // Post body content
	UserID    string    `json:"user_id"`   // Opaque author id
	Tags      []string  `json:"tags"`      // Free-form labels
	Category  *string   `json:"category"`  // Optional category name
	Likes     []string  `json:"likes"`     // User ids that like the post
	CreatedAt time.Time `json:"created_at"`
}

// PostRepository defines the contract for post data persistence
type PostRepository interface {
	// Store creates a new post and backfills ID and CreatedAt.
	Store(ctx context.Context, p *Post) error

	// GetByID retrieves a single post by its ID.
	// Returns ErrNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id int64) (*Post, error)

	// GetByIDs retrieves posts by given IDs. Missing ids are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]Post, error)

	// Fetch retrieves posts newest first with limit/offset pagination.
	Fetch(ctx context.Context, limit, offset int) ([]Post, error)

	// Search retrieves posts whose title contains the query, newest first.
	Search(ctx context.Context, query string, limit, offset int) ([]Post, error)

	// Delete removes a post by its ID.
	// Returns ErrNotFound if not exists.
	Delete(ctx context.Context, id int64) error

	// ToggleLike flips userID's membership in the post's like array as a
	// single atomic statement and returns the updated like set.
	// Returns ErrNotFound if the post doesn't exist.
	ToggleLike(ctx context.Context, postID int64, userID string) ([]string, error)
}

type PostUsecase interface {
	Store(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	Fetch(ctx context.Context, limit, offset int) ([]Post, error)
	Search(ctx context.Context, query string, limit, offset int) ([]Post, error)
	Delete(ctx context.Context, id int64) error
	ToggleLike(ctx context.Context, postID int64, userID string) (*Post, error)
}
