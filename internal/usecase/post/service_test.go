package post_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/postline/postline/domain"
	"github.com/postline/postline/domain/mocks"
	"github.com/postline/postline/internal/usecase/post"
)

func TestStoreValidPost(t *testing.T) {
	postRepo := new(mocks.PostRepository)
	svc := post.NewService(postRepo, new(mocks.CommentCache))

	p := &domain.Post{Title: faker.Sentence(), Content: faker.Paragraph(), UserID: "u1"}
	postRepo.On("Store", mock.Anything, p).Return(nil)

	assert.NoError(t, svc.Store(context.Background(), p))
	postRepo.AssertExpectations(t)
}

func TestStoreRejectsMissingFields(t *testing.T) {
	postRepo := new(mocks.PostRepository)
	svc := post.NewService(postRepo, new(mocks.CommentCache))

	err := svc.Store(context.Background(), &domain.Post{Title: "", Content: "x", UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	err = svc.Store(context.Background(), &domain.Post{Title: "x", Content: "", UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	postRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestToggleLikeReturnsPostWithUpdatedSet(t *testing.T) {
	postRepo := new(mocks.PostRepository)
	svc := post.NewService(postRepo, new(mocks.CommentCache))

	postRepo.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Post{ID: 5, UserID: "author", Likes: []string{"u1"}}, nil)
	postRepo.On("ToggleLike", mock.Anything, int64(5), "u2").
		Return([]string{"u1", "u2"}, nil)

	got, err := svc.ToggleLike(context.Background(), 5, "u2")

	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, got.Likes)
	postRepo.AssertExpectations(t)
}

func TestToggleLikeMissingPost(t *testing.T) {
	postRepo := new(mocks.PostRepository)
	svc := post.NewService(postRepo, new(mocks.CommentCache))

	postRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

	_, err := svc.ToggleLike(context.Background(), 404, "u2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	postRepo.AssertNotCalled(t, "ToggleLike", mock.Anything, mock.Anything, mock.Anything)
}

// Double toggle at the membership level returns to the original set.
func TestToggleLikeTwiceRestoresMembership(t *testing.T) {
	before := []string{"u1", "u3"}

	after := domain.ToggleMember(before, "u2")
	restored := domain.ToggleMember(after, "u2")

	assert.ElementsMatch(t, before, restored)
}

func TestSearchEmptyQueryShortCircuits(t *testing.T) {
	postRepo := new(mocks.PostRepository)
	svc := post.NewService(postRepo, new(mocks.CommentCache))

	got, err := svc.Search(context.Background(), "", 10, 0)

	require.NoError(t, err)
	assert.Empty(t, got)
	postRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteInvalidatesThreadCache(t *testing.T) {
	postRepo := new(mocks.PostRepository)
	cache := new(mocks.CommentCache)
	svc := post.NewService(postRepo, cache)

	postRepo.On("Delete", mock.Anything, int64(5)).Return(nil)
	cache.On("DeleteThread", mock.Anything, int64(5)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 5))
	cache.AssertExpectations(t)
}

func TestDeleteMissingPost(t *testing.T) {
	postRepo := new(mocks.PostRepository)
	cache := new(mocks.CommentCache)
	svc := post.NewService(postRepo, cache)

	postRepo.On("Delete", mock.Anything, int64(404)).Return(domain.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 404), domain.ErrNotFound)
	cache.AssertNotCalled(t, "DeleteThread", mock.Anything, mock.Anything)
}
