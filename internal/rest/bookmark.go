package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/postline/postline/domain"
	"github.com/postline/postline/internal/rest/response"
)

// BookmarkHandler represent the httphandler for bookmarks
type BookmarkHandler struct {
	Service domain.BookmarkUsecase
}

func NewBookmarkHandler(svc domain.BookmarkUsecase) *BookmarkHandler {
	return &BookmarkHandler{
		Service: svc,
	}
}

// Toggle flips the caller's bookmark on the post
func (h *BookmarkHandler) Toggle(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := userID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	bookmarked, err := h.Service.Toggle(ctx, postID, uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post_id": postID, "bookmarked": bookmarked})
}

// Fetch lists the caller's bookmarked posts, most recent first
func (h *BookmarkHandler) Fetch(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	limit, offset := pagination(c)

	ctx := c.Request.Context()
	posts, err := h.Service.FetchPosts(ctx, uid, limit, offset)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Post, len(posts))
	for i := range posts {
		res[i] = response.NewPostFromDomain(&posts[i])
	}
	c.JSON(http.StatusOK, res)
}
