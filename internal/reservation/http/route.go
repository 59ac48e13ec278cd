package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers reservation related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/reservations")
	{
		group.POST("", h.Create)      // Submit a reservation request
		group.GET("", h.List)         // List reservations
		group.GET("/:id", h.Get)      // Reservation details
		group.PATCH("/:id", h.Update) // Confirm / cancel
	}
}
