package comment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/postline/postline/domain"
	"github.com/postline/postline/domain/mocks"
	"github.com/postline/postline/internal/usecase/comment"
)

func newService(t *testing.T) (*comment.Service, *mocks.CommentRepository, *mocks.PostRepository, *mocks.CommentCache, *mocks.FanoutWorker) {
	t.Helper()
	commentRepo := new(mocks.CommentRepository)
	postRepo := new(mocks.PostRepository)
	cache := new(mocks.CommentCache)
	fanout := new(mocks.FanoutWorker)
	svc := comment.NewService(commentRepo, postRepo, cache, fanout)
	return svc, commentRepo, postRepo, cache, fanout
}

func TestCreateTopLevelFansOutToPostAuthor(t *testing.T) {
	svc, commentRepo, postRepo, cache, fanout := newService(t)

	post := &domain.Post{ID: 1, UserID: "author", Title: faker.Sentence()}

	postRepo.On("GetByID", mock.Anything, int64(1)).Return(post, nil)
	commentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Comment).ID = 10
		}).
		Return(nil)
	fanout.On("Send", mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == "author" && n.Type == domain.NotificationComment && n.CommentID == 10
	})).Return()
	cache.On("DeleteThread", mock.Anything, int64(1)).Return(nil)

	c := &domain.Comment{PostID: 1, UserID: "commenter", Content: "hello"}
	err := svc.Create(context.Background(), c)

	assert.NoError(t, err)
	assert.Equal(t, int64(10), c.ID)
	commentRepo.AssertExpectations(t)
	postRepo.AssertExpectations(t)
	fanout.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCreateOnOwnPostProducesNoNotification(t *testing.T) {
	svc, commentRepo, postRepo, cache, fanout := newService(t)

	postRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Post{ID: 1, UserID: "author"}, nil)
	commentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil)
	cache.On("DeleteThread", mock.Anything, int64(1)).Return(nil)

	err := svc.Create(context.Background(), &domain.Comment{PostID: 1, UserID: "author", Content: "note to self"})

	assert.NoError(t, err)
	fanout.AssertNotCalled(t, "Send", mock.Anything)
}

func TestCreateReplyFansOutToParentAuthor(t *testing.T) {
	svc, commentRepo, postRepo, cache, fanout := newService(t)

	parentID := int64(5)
	postRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Post{ID: 1, UserID: "author"}, nil)
	commentRepo.On("GetByID", mock.Anything, parentID).
		Return(&domain.Comment{ID: parentID, PostID: 1, UserID: "parent-author"}, nil)
	commentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil)
	fanout.On("Send", mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == "parent-author" && n.Type == domain.NotificationReply
	})).Return()
	cache.On("DeleteThread", mock.Anything, int64(1)).Return(nil)

	err := svc.Create(context.Background(), &domain.Comment{PostID: 1, UserID: "replier", Content: "re", ParentID: &parentID})

	assert.NoError(t, err)
	fanout.AssertExpectations(t)
}

func TestCreateReplyToMissingParentStillSucceeds(t *testing.T) {
	svc, commentRepo, postRepo, cache, fanout := newService(t)

	parentID := int64(404)
	postRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Post{ID: 1, UserID: "author"}, nil)
	commentRepo.On("GetByID", mock.Anything, parentID).Return(nil, domain.ErrNotFound)
	commentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil)
	cache.On("DeleteThread", mock.Anything, int64(1)).Return(nil)

	err := svc.Create(context.Background(), &domain.Comment{PostID: 1, UserID: "replier", Content: "re", ParentID: &parentID})

	assert.NoError(t, err)
	fanout.AssertNotCalled(t, "Send", mock.Anything)
}

func TestCreateOnMissingPostFails(t *testing.T) {
	svc, commentRepo, postRepo, _, _ := newService(t)

	postRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

	err := svc.Create(context.Background(), &domain.Comment{PostID: 404, UserID: "u", Content: "x"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestCreateEmptyContentRejected(t *testing.T) {
	svc, commentRepo, postRepo, _, _ := newService(t)

	err := svc.Create(context.Background(), &domain.Comment{PostID: 1, UserID: "u", Content: ""})

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	postRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestFetchThreadAssemblesOneLevel(t *testing.T) {
	svc, commentRepo, _, _, _ := newService(t)

	top := []*domain.Comment{
		{ID: 1, PostID: 9, UserID: "u1"},
		{ID: 2, PostID: 9, UserID: "u2"},
	}
	pid := int64(1)
	replies := []*domain.Comment{{ID: 3, PostID: 9, UserID: "u3", ParentID: &pid}}

	commentRepo.On("FetchTopLevel", mock.Anything, int64(9), 2, 0).Return(top, nil)
	commentRepo.On("FetchChildrenOf", mock.Anything, []int64{1, 2}).Return(replies, nil)

	got, err := svc.FetchThread(context.Background(), 9, 2, 0)

	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Len(t, got[0].Replies, 1)
	assert.Equal(t, int64(3), got[0].Replies[0].ID)
	commentRepo.AssertExpectations(t)
}

func TestFetchThreadEmptyPageSkipsChildrenQuery(t *testing.T) {
	svc, commentRepo, _, _, _ := newService(t)

	commentRepo.On("FetchTopLevel", mock.Anything, int64(9), 20, 0).Return([]*domain.Comment{}, nil)

	got, err := svc.FetchThread(context.Background(), 9, 20, 0)

	require.NoError(t, err)
	assert.Empty(t, got)
	commentRepo.AssertNotCalled(t, "FetchChildrenOf", mock.Anything, mock.Anything)
}

func TestFetchThreadDegradesWhenRepliesFail(t *testing.T) {
	svc, commentRepo, _, _, _ := newService(t)

	top := []*domain.Comment{{ID: 1, PostID: 9, UserID: "u1"}}
	commentRepo.On("FetchTopLevel", mock.Anything, int64(9), 20, 0).Return(top, nil)
	commentRepo.On("FetchChildrenOf", mock.Anything, []int64{1}).Return(nil, errors.New("store gone"))

	got, err := svc.FetchThread(context.Background(), 9, 20, 0)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Replies)
}

func TestFetchFullThreadServesFromCache(t *testing.T) {
	svc, commentRepo, _, cache, _ := newService(t)

	cached := []*domain.Comment{{ID: 1, PostID: 9, UserID: "u1", Replies: []*domain.Comment{}}}
	cache.On("GetThread", mock.Anything, int64(9)).Return(cached, nil)

	got, err := svc.FetchFullThread(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, cached, got)
	commentRepo.AssertNotCalled(t, "FetchAllByPost", mock.Anything, mock.Anything)
}

func TestFetchFullThreadBuildsForestOnCacheMiss(t *testing.T) {
	svc, commentRepo, _, cache, _ := newService(t)

	pid := int64(1)
	all := []*domain.Comment{
		{ID: 1, PostID: 9, UserID: "u1"},
		{ID: 2, PostID: 9, UserID: "u2", ParentID: &pid},
	}
	cache.On("GetThread", mock.Anything, int64(9)).Return(nil, domain.ErrCacheMiss)
	commentRepo.On("FetchAllByPost", mock.Anything, int64(9)).Return(all, nil)
	cache.On("SetThread", mock.Anything, int64(9), mock.Anything).Return(nil)

	got, err := svc.FetchFullThread(context.Background(), 9)

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Replies, 1)
	assert.Equal(t, int64(2), got[0].Replies[0].ID)
	cache.AssertExpectations(t)
}

func TestDeleteRemovesSubtreeAndInvalidatesCache(t *testing.T) {
	svc, commentRepo, _, cache, _ := newService(t)

	commentRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Comment{ID: 3, PostID: 9, UserID: "u1"}, nil)
	commentRepo.On("DeleteSubtree", mock.Anything, int64(3)).Return(nil)
	cache.On("DeleteThread", mock.Anything, int64(9)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 3))
	commentRepo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestDeleteMissingCommentIsNoOp(t *testing.T) {
	svc, commentRepo, _, _, _ := newService(t)

	commentRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

	assert.NoError(t, svc.Delete(context.Background(), 404))
	commentRepo.AssertNotCalled(t, "DeleteSubtree", mock.Anything, mock.Anything)
}

func TestToggleLikeReturnsUpdatedSet(t *testing.T) {
	svc, commentRepo, _, cache, _ := newService(t)

	commentRepo.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Comment{ID: 3, PostID: 9, UserID: "u1", Likes: []string{"u2"}}, nil)
	commentRepo.On("ToggleLike", mock.Anything, int64(3), "u5").Return(true, nil)
	cache.On("DeleteThread", mock.Anything, int64(9)).Return(nil)

	got, err := svc.ToggleLike(context.Background(), 3, "u5")

	require.NoError(t, err)
	assert.Equal(t, []string{"u2", "u5"}, got.Likes)
}

func TestToggleLikeOnMissingComment(t *testing.T) {
	svc, commentRepo, _, _, _ := newService(t)

	commentRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

	_, err := svc.ToggleLike(context.Background(), 404, "u5")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
