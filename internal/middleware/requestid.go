package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"desapega-api/pkg/log"
)

// RequestIDHeader is echoed back so clients can correlate reports with logs.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with a unique id, propagated through the
// request context for log enrichment.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), log.RequestIDKey, reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, reqID)

		c.Next()
	}
}
