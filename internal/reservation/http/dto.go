package http

import (
	"time"

	"github.com/safariwheels/fleet-booking-backend/internal/reservation"
	"github.com/safariwheels/fleet-booking-backend/internal/schedule"
)

// CreateReservationBody is the booking form's submission payload. The total
// is not accepted from the client; it is priced server-side from the rate on
// record.
type CreateReservationBody struct {
	VehicleID       string             `json:"vehicle_id" binding:"required,uuid"`
	Dates           []schedule.DateKey `json:"dates" binding:"required,min=1"`
	FullName        string             `json:"full_name" binding:"required"`
	Email           string             `json:"email" binding:"required,email"`
	Phone           string             `json:"phone" binding:"required"`
	IDNumber        string             `json:"id_number" binding:"required"`
	SpecialRequests string             `json:"special_requests" binding:"omitempty,max=500"`
}

type UpdateReservationBody struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

type ListReservationsRequest struct {
	VehicleID string `form:"vehicle_id" binding:"omitempty,uuid"`
	Status    string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	Page      int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type CustomerResponse struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IDNumber string `json:"id_number"`
}

type ReservationResponse struct {
	ID               string             `json:"id"`
	VehicleID        string             `json:"vehicle_id"`
	VehicleModel     string             `json:"vehicle_model"`
	Dates            []schedule.DateKey `json:"dates"`
	TotalAmountCents int64              `json:"total_amount_cents"`
	Customer         CustomerResponse   `json:"customer"`
	SpecialRequests  string             `json:"special_requests,omitempty"`
	Status           string             `json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func NewReservationResponse(res *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:               res.ID,
		VehicleID:        res.VehicleID,
		VehicleModel:     res.VehicleModel,
		Dates:            res.Dates,
		TotalAmountCents: res.TotalAmountCents,
		Customer: CustomerResponse{
			FullName: res.Customer.FullName,
			Email:    res.Customer.Email,
			Phone:    res.Customer.Phone,
			IDNumber: res.Customer.IDNumber,
		},
		SpecialRequests: res.SpecialRequests,
		Status:          string(res.Status),
		CreatedAt:       res.CreatedAt,
		UpdatedAt:       res.UpdatedAt,
	}
}

// ConflictResponse names the days that were lost to a concurrent booking so
// the customer can re-confirm the remainder.
type ConflictResponse struct {
	Error            string             `json:"error"`
	ConflictingDates []schedule.DateKey `json:"conflicting_dates"`
}
