package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"desapega-api/internal/model"
	"desapega-api/pkg/response"
)

// scopeKey is the gin context key holding the authenticated actor.
const scopeKey = "scope"

// Auth verifies the Bearer token and places the actor Scope in the context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: token rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID:  claims.UserID,
			Email:   claims.Email,
			Profile: claims.Profile,
		})
		c.Next()
	}
}

// ScopeFromContext returns the authenticated actor set by Auth.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
