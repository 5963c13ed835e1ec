package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/postline/postline/domain"
	"github.com/postline/postline/internal/rest/response"
)

// NotificationHandler represent the httphandler for notifications
type NotificationHandler struct {
	Service domain.NotificationUsecase
}

func NewNotificationHandler(svc domain.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		Service: svc,
	}
}

// Fetch lists the caller's notifications, newest first
func (h *NotificationHandler) Fetch(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	limit, offset := pagination(c)

	ctx := c.Request.Context()
	ns, err := h.Service.FetchByUser(ctx, uid, limit, offset)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Notification, len(ns))
	for i := range ns {
		res[i] = response.NewNotificationFromDomain(&ns[i])
	}
	c.JSON(http.StatusOK, res)
}
