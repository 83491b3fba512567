package http

import (
	"desapega-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Reads are public; every mutation requires an authenticated actor.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.GET("", h.List)
		items.GET("/:id", h.Detail)

		items.POST("", mw.Auth(), h.Create)
		items.PUT("/:id", mw.Auth(), h.Update)
		items.DELETE("/:id", mw.Auth(), h.Delete)
		items.PATCH("/:id/status", mw.Auth(), h.UpdateStatus)
		items.POST("/:id/reserve", mw.Auth(), h.Reserve)
		items.POST("/:id/buy", mw.Auth(), h.Buy)
	}
}
