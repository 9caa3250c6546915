package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	UserIDHeader = "X-User-ID"
	UserIDKey    = "user_id"
)

// CurrentUser resolves the acting user from the X-User-ID header and falls
// back to defaultID. Authentication is handled outside this service.
func CurrentUser(defaultID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := defaultID
		if raw := c.GetHeader(UserIDHeader); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid " + UserIDHeader + " header"})
				return
			}
			uid = id
		}
		c.Set(UserIDKey, uid)
		c.Next()
	}
}
