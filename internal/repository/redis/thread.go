package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/postline/postline/domain"
)

const (
	keyThreadPrefix  = "thread:post:"
	defaultThreadTTL = 5 * time.Minute
)

// threadCache stores the assembled full-thread forest of a post as JSON.
// Entries are invalidated whenever a comment of that post is created,
// deleted or liked.
type threadCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.CommentCache = (*threadCache)(nil)

func NewThreadCache(client *redis.Client) *threadCache {
	return &threadCache{
		client: client,
		ttl:    defaultThreadTTL,
	}
}

func threadKey(postID int64) string {
	return fmt.Sprintf("%s%d", keyThreadPrefix, postID)
}

func (t *threadCache) GetThread(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	val, err := t.client.Get(ctx, threadKey(postID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCacheMiss
		}
		return nil, err
	}

	var thread []*domain.Comment
	if err := json.Unmarshal([]byte(val), &thread); err != nil {
		return nil, err
	}
	return thread, nil
}

func (t *threadCache) SetThread(ctx context.Context, postID int64, thread []*domain.Comment) error {
	data, err := json.Marshal(thread)
	if err != nil {
		return err
	}
	return t.client.Set(ctx, threadKey(postID), data, t.ttl).Err()
}

func (t *threadCache) DeleteThread(ctx context.Context, postID int64) error {
	return t.client.Del(ctx, threadKey(postID)).Err()
}
