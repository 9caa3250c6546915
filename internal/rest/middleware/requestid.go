package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID propagates the X-Request-ID header, generating a UUID v4 when the
// client did not send one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()

		if len(c.Errors) > 0 {
			logrus.WithField(RequestIDKey, id).Warnf("%s %s: %s", c.Request.Method, c.Request.URL.Path, c.Errors.String())
		}
	}
}
