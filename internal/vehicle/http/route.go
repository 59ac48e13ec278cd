package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers fleet related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/fleet")
	{
		group.GET("", h.List)                  // Fleet grouped by category
		group.GET("/:id", h.Get)               // Vehicle details + booked days
		group.GET("/:id/calendar", h.Calendar) // Month grid for the booking view
	}
}
