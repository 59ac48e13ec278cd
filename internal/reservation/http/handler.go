package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/safariwheels/fleet-booking-backend/internal/pkg/response"
	"github.com/safariwheels/fleet-booking-backend/internal/reservation"
)

type Handler struct {
	service reservation.Service
}

func NewHandler(service reservation.Service) *Handler {
	return &Handler{service: service}
}

// Create submits a reservation request. The outcome of the storage-side
// arbitration maps onto the status code: accepted requests are created,
// conflicts report exactly the days that were just taken, and a decision
// that could not be reached is retryable.
func (h *Handler) Create(c *gin.Context) {
	var body CreateReservationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	out, err := h.service.Create(c.Request.Context(), reservation.CreateRequest{
		VehicleID: body.VehicleID,
		Dates:     body.Dates,
		Customer: reservation.Customer{
			FullName: body.FullName,
			Email:    body.Email,
			Phone:    body.Phone,
			IDNumber: body.IDNumber,
		},
		SpecialRequests: body.SpecialRequests,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	switch out.Kind {
	case reservation.OutcomeAccepted:
		c.JSON(http.StatusCreated, NewReservationResponse(out.Reservation))
	case reservation.OutcomeConflict:
		c.JSON(http.StatusConflict, ConflictResponse{
			Error:            reservation.ErrDateConflict.Message,
			ConflictingDates: out.Conflicts,
		})
	case reservation.OutcomeInvalid:
		c.JSON(http.StatusBadRequest, gin.H{"error": out.Reason})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "reservation could not be completed, please retry"})
	}
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation ID"})
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}

func (h *Handler) List(c *gin.Context) {
	var req ListReservationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	reservations, total, err := h.service.List(c.Request.Context(), reservation.Filter{
		VehicleID: req.VehicleID,
		Status:    req.Status,
		Page:      req.Page,
		PageSize:  req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ReservationResponse, len(reservations))
	for i, res := range reservations {
		items[i] = NewReservationResponse(res)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

// Update changes a reservation's status (confirm or cancel). Cancelling
// releases the reserved days.
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation ID"})
		return
	}

	var body UpdateReservationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.service.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}
