package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/postline/postline/domain"
	"github.com/postline/postline/internal/rest/request"
	"github.com/postline/postline/internal/rest/response"
)

// CommentHandler represent the httphandler for comments
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// Create will store a new comment or reply on a post
func (h *CommentHandler) Create(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := userID(c)
	if !ok {
		return
	}

	comment := req.ToDomain(postID, uid)
	ctx := c.Request.Context()
	if err := h.Service.Create(ctx, &comment); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

// FetchThread returns one page of top-level comments, each with one
// level of replies attached.
func (h *CommentHandler) FetchThread(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	limit, offset := pagination(c)

	ctx := c.Request.Context()
	thread, err := h.Service.FetchThread(ctx, postID, limit, offset)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentsFromDomain(thread))
}

// FetchFullThread returns the post's whole comment forest with
// unlimited nesting.
func (h *CommentHandler) FetchFullThread(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	forest, err := h.Service.FetchFullThread(ctx, postID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentsFromDomain(forest))
}

// Delete removes a comment and its whole subtree
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Delete(ctx, id); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// Like toggles the caller's like on the comment
func (h *CommentHandler) Like(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := userID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.ToggleLike(ctx, id, uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(comment))
}
