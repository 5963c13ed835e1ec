package post

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/postline/postline/domain"
)

type Service struct {
	postRepo domain.PostRepository
	cache    domain.CommentCache
}

var _ domain.PostUsecase = (*Service)(nil)

func NewService(postRepo domain.PostRepository, cache domain.CommentCache) *Service {
	return &Service{
		postRepo: postRepo,
		cache:    cache,
	}
}

func (s *Service) Store(ctx context.Context, p *domain.Post) error {
	if p.Title == "" || p.Content == "" {
		return domain.ErrBadParamInput
	}
	return s.postRepo.Store(ctx, p)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *Service) Fetch(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	return s.postRepo.Fetch(ctx, limit, offset)
}

func (s *Service) Search(ctx context.Context, query string, limit, offset int) ([]domain.Post, error) {
	if query == "" {
		return []domain.Post{}, nil
	}
	return s.postRepo.Search(ctx, query, limit, offset)
}

// Delete removes the post; comments, likes, bookmarks and notifications
// go with it through the store-side cascades.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cache.DeleteThread(ctx, id); err != nil {
		logrus.Warnf("failed to invalidate thread cache for post %d: %v", id, err)
	}
	return nil
}

// ToggleLike flips the caller's membership in the post's like array and
// returns the post carrying the updated set.
func (s *Service) ToggleLike(ctx context.Context, postID int64, userID string) (*domain.Post, error) {
	p, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	likes, err := s.postRepo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	p.Likes = likes
	return p, nil
}
