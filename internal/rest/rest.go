package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/postline/postline/domain"
	"github.com/postline/postline/internal/repository"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// UserIDKey is where the identity middleware stores the caller's id.
const UserIDKey = "user_id"

// getStatusCode maps domain errors to HTTP statuses
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch err {
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// pagination reads limit/offset query params. Malformed values coerce to
// the defaults instead of failing the request.
func pagination(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = repository.DefaultLimit
	}
	offset, err = strconv.Atoi(c.Query("offset"))
	if err != nil {
		offset = repository.DefaultOffset
	}
	return repository.CoercePage(limit, offset)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return 0, false
	}
	return id, true
}

func userID(c *gin.Context) (string, bool) {
	uid, exists := c.Get(UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "user not authenticated"})
		return "", false
	}
	return uid.(string), true
}
