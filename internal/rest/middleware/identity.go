package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the opaque, pre-authenticated caller id injected
// by the upstream gateway. This service does not verify it.
const UserIDHeader = "X-User-ID"

// Identity copies the caller id from the header into the request context.
// Handlers that need an identity reject its absence themselves.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid := c.GetHeader(UserIDHeader); uid != "" {
			c.Set("user_id", uid)
		}
		c.Next()
	}
}

// RequireIdentity aborts requests that arrive without a caller id.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("user_id"); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
			return
		}
		c.Next()
	}
}
