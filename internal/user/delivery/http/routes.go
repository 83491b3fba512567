package http

import (
	"desapega-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Registration and login are public; profile routes require a token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)

		auth.GET("/me", mw.Auth(), h.Me)
		auth.PATCH("/password", mw.Auth(), h.ChangePassword)
	}
}
