package http

import (
	"time"

	"github.com/safariwheels/fleet-booking-backend/internal/schedule"
	"github.com/safariwheels/fleet-booking-backend/internal/vehicle"
)

// FleetItem is a vehicle as shown on the fleet listing. The registration
// number is deliberately not exposed here.
type FleetItem struct {
	ID             string    `json:"id"`
	Model          string    `json:"model"`
	ImageURL       string    `json:"image_url"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	CreatedAt      time.Time `json:"created_at"`
}

// FleetGroup is one category's slice of the fleet.
type FleetGroup struct {
	Category string      `json:"category"`
	Vehicles []FleetItem `json:"vehicles"`
}

// VehicleResponse is the booking-form payload: the vehicle plus every booked
// day, flattened for the client's availability index.
type VehicleResponse struct {
	ID             string             `json:"id"`
	Model          string             `json:"model"`
	CategoryID     string             `json:"category_id"`
	CategoryTitle  string             `json:"category_title"`
	ImageURL       string             `json:"image_url"`
	DailyRateCents int64              `json:"daily_rate_cents"`
	BookedDates    []schedule.DateKey `json:"booked_dates"`
	CreatedAt      time.Time          `json:"created_at"`
}

func NewVehicleResponse(v *vehicle.Vehicle) VehicleResponse {
	var booked []schedule.DateKey
	for _, entry := range v.Schedule {
		booked = append(booked, entry.Dates...)
	}
	return VehicleResponse{
		ID:             v.ID,
		Model:          v.Model,
		CategoryID:     v.CategoryID,
		CategoryTitle:  v.CategoryTitle,
		ImageURL:       v.ImageURL,
		DailyRateCents: v.DailyRateCents,
		BookedDates:    booked,
		CreatedAt:      v.CreatedAt,
	}
}

// CalendarRequest selects the month to render.
type CalendarRequest struct {
	Year  int `form:"year" binding:"required,min=2000,max=2200"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// CalendarResponse is the server-rendered 42-cell month grid.
type CalendarResponse struct {
	VehicleID string          `json:"vehicle_id"`
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	Cells     []schedule.Cell `json:"cells"`
}
