package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers category related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/categories")
	{
		group.GET("", h.List)    // List categories, newest first
		group.GET("/:id", h.Get) // Category details
	}
}
