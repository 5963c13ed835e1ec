package bookmark

import (
	"context"

	"github.com/postline/postline/domain"
)

type Service struct {
	bookmarkRepo domain.BookmarkRepository
	postRepo     domain.PostRepository
}

var _ domain.BookmarkUsecase = (*Service)(nil)

func NewService(bookmarkRepo domain.BookmarkRepository, postRepo domain.PostRepository) *Service {
	return &Service{
		bookmarkRepo: bookmarkRepo,
		postRepo:     postRepo,
	}
}

func (s *Service) Toggle(ctx context.Context, postID int64, userID string) (bool, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return false, err
	}
	return s.bookmarkRepo.Toggle(ctx, postID, userID)
}

// FetchPosts returns the user's bookmarked posts, most recently
// bookmarked first. The bulk post fetch does not guarantee order, so the
// result is rearranged to follow the bookmark order.
func (s *Service) FetchPosts(ctx context.Context, userID string, limit, offset int) ([]domain.Post, error) {
	ids, err := s.bookmarkRepo.FetchPostIDsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.Post{}, nil
	}

	posts, err := s.postRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}
	res := make([]domain.Post, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			res = append(res, p)
		}
	}
	return res, nil
}
