package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/safariwheels/fleet-booking-backend/internal/pkg/response"
	"github.com/safariwheels/fleet-booking-backend/internal/schedule"
	"github.com/safariwheels/fleet-booking-backend/internal/vehicle"
)

type Handler struct {
	service vehicle.Service
}

func NewHandler(service vehicle.Service) *Handler {
	return &Handler{service: service}
}

// List returns the fleet grouped by category title.
func (h *Handler) List(c *gin.Context) {
	vehicles, err := h.service.List(c.Request.Context(), vehicle.Filter{
		CategoryID: c.Query("category_id"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	var groups []FleetGroup
	byTitle := make(map[string]int)
	for _, v := range vehicles {
		item := FleetItem{
			ID:             v.ID,
			Model:          v.Model,
			ImageURL:       v.ImageURL,
			DailyRateCents: v.DailyRateCents,
			CreatedAt:      v.CreatedAt,
		}
		i, ok := byTitle[v.CategoryTitle]
		if !ok {
			groups = append(groups, FleetGroup{Category: v.CategoryTitle})
			i = len(groups) - 1
			byTitle[v.CategoryTitle] = i
		}
		groups[i].Vehicles = append(groups[i].Vehicles, item)
	}
	if groups == nil {
		groups = make([]FleetGroup, 0)
	}

	c.JSON(http.StatusOK, gin.H{"data": groups})
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle ID"})
		return
	}

	v, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewVehicleResponse(v))
}

// Calendar renders the month grid for a vehicle, for clients that do not run
// a booking session locally. The selection is empty; "today" is evaluated
// once for the whole render.
func (h *Handler) Calendar(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle ID"})
		return
	}

	var req CalendarRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid calendar query", "details": err.Error()})
		return
	}

	v, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	today := schedule.DateKeyFromTime(time.Now().UTC())
	cells := schedule.Generate(req.Year, time.Month(req.Month), schedule.NewIndex(v.Schedule), schedule.NewSelection(), today)

	c.JSON(http.StatusOK, CalendarResponse{
		VehicleID: v.ID,
		Year:      req.Year,
		Month:     req.Month,
		Cells:     cells,
	})
}
