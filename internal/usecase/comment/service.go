package comment

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/postline/postline/domain"
)

type Service struct {
	commentRepo domain.CommentRepository
	postRepo    domain.PostRepository
	cache       domain.CommentCache
	fanout      domain.FanoutWorker
}

var _ domain.CommentUsecase = (*Service)(nil)

func NewService(commentRepo domain.CommentRepository, postRepo domain.PostRepository, cache domain.CommentCache, fanout domain.FanoutWorker) *Service {
	return &Service{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		cache:       cache,
		fanout:      fanout,
	}
}

// Create inserts the comment and derives its notification. The post and,
// for replies, the parent comment are loaded concurrently: the post is
// required (ErrNotFound aborts the create), the parent is best effort
// only — a reply to a vanished parent is still stored, it just notifies
// nobody. Fanout never fails the create.
func (s *Service) Create(ctx context.Context, c *domain.Comment) error {
	if c.Content == "" {
		return domain.ErrBadParamInput
	}

	var (
		post   *domain.Post
		parent *domain.Comment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.postRepo.GetByID(gctx, c.PostID)
		if err != nil {
			return err
		}
		post = p
		return nil
	})
	if c.ParentID != nil {
		g.Go(func() error {
			p, err := s.commentRepo.GetByID(gctx, *c.ParentID)
			if err != nil {
				// fanout context only: a reply to an unreadable parent is
				// still stored, it just notifies nobody
				if !errors.Is(err, domain.ErrNotFound) {
					logrus.Warnf("failed to load parent comment %d: %v", *c.ParentID, err)
				}
				return nil
			}
			parent = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}

	if n := DeriveRecipient(c, parent, post); n != nil {
		s.fanout.Send(*n)
	}

	if err := s.cache.DeleteThread(ctx, c.PostID); err != nil {
		logrus.Warnf("failed to invalidate thread cache for post %d: %v", c.PostID, err)
	}
	return nil
}

// FetchThread returns one page of top-level comments with one level of
// replies attached. A failure while loading the replies degrades to the
// bare top-level page rather than failing the read.
func (s *Service) FetchThread(ctx context.Context, postID int64, limit, offset int) ([]*domain.Comment, error) {
	topLevel, err := s.commentRepo.FetchTopLevel(ctx, postID, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(topLevel) == 0 {
		return []*domain.Comment{}, nil
	}

	parentIDs := make([]int64, len(topLevel))
	for i, c := range topLevel {
		parentIDs[i] = c.ID
	}

	replies, err := s.commentRepo.FetchChildrenOf(ctx, parentIDs)
	if err != nil {
		logrus.Warnf("failed to fetch replies for post %d: %v", postID, err)
		return BuildThread(topLevel, nil), nil
	}
	return BuildThread(topLevel, replies), nil
}

// FetchFullThread returns the whole forest of a post, served from the
// thread cache when possible.
func (s *Service) FetchFullThread(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	thread, err := s.cache.GetThread(ctx, postID)
	if err == nil {
		return thread, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("thread cache get error for post %d: %v", postID, err)
	}

	all, err := s.commentRepo.FetchAllByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	forest := BuildForest(all)

	if err := s.cache.SetThread(ctx, postID, forest); err != nil {
		logrus.Warnf("failed to cache thread for post %d: %v", postID, err)
	}
	return forest, nil
}

// Delete removes the comment and its whole subtree. Deleting an id that
// no longer exists succeeds without touching the store.
func (s *Service) Delete(ctx context.Context, id int64) error {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.commentRepo.DeleteSubtree(ctx, id); err != nil {
		return err
	}

	if err := s.cache.DeleteThread(ctx, c.PostID); err != nil {
		logrus.Warnf("failed to invalidate thread cache for post %d: %v", c.PostID, err)
	}
	return nil
}

// ToggleLike flips the caller's like on the comment and returns it with
// the updated like set.
func (s *Service) ToggleLike(ctx context.Context, commentID int64, userID string) (*domain.Comment, error) {
	c, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if _, err := s.commentRepo.ToggleLike(ctx, commentID, userID); err != nil {
		return nil, err
	}
	c.Likes = domain.ToggleMember(c.Likes, userID)

	// cached thread views embed like sets
	if err := s.cache.DeleteThread(ctx, c.PostID); err != nil {
		logrus.Warnf("failed to invalidate thread cache for post %d: %v", c.PostID, err)
	}
	return c, nil
}
