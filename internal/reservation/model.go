package reservation

import (
	"net/http"
	"time"

	"github.com/safariwheels/fleet-booking-backend/internal/pkg/apperror"
	"github.com/safariwheels/fleet-booking-backend/internal/schedule"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "reservation not found")
	ErrVehicleNotFound = apperror.New(http.StatusNotFound, "vehicle not found")
	ErrEmptySelection  = apperror.New(http.StatusBadRequest, "select at least one day")
	ErrRequestTooLong  = apperror.New(http.StatusBadRequest, "special requests must be 500 characters or fewer")
	ErrDateConflict    = apperror.New(http.StatusConflict, "some selected days are already booked")
	ErrInvalidStatus   = apperror.New(http.StatusBadRequest, "invalid reservation status")
	ErrSubmitInFlight  = apperror.New(http.StatusConflict, "a submission is already in progress")
)

// NewMissingFieldError reports the first required customer field that was
// left empty, by name, so the form can highlight it.
func NewMissingFieldError(field string) *apperror.AppError {
	return apperror.New(http.StatusBadRequest, field+" is required")
}

// MaxSpecialRequests caps the free-text note attached to a reservation.
const MaxSpecialRequests = 500

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Customer identifies who the reservation is for. All four fields are
// required; they are stored trimmed.
type Customer struct {
	FullName string
	Email    string
	Phone    string
	IDNumber string
}

// Reservation is a priced request to occupy a set of days on one vehicle.
// Once built it is immutable; only its status changes afterwards.
type Reservation struct {
	ID               string
	VehicleID        string
	VehicleModel     string
	Dates            []schedule.DateKey // ascending, unique
	TotalAmountCents int64
	Customer         Customer
	SpecialRequests  string
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Filter defines parameters for listing reservations.
type Filter struct {
	VehicleID string
	Status    string
	Page      int
	PageSize  int
}

// OutcomeKind tags the result of a reserve attempt.
type OutcomeKind string

const (
	OutcomeAccepted  OutcomeKind = "accepted"
	OutcomeConflict  OutcomeKind = "conflicting_dates"
	OutcomeInvalid   OutcomeKind = "invalid"
	OutcomeTransient OutcomeKind = "transient_failure"
)

// Outcome is the arbitrated result of submitting a reservation. Exactly one
// of the payload fields is meaningful, keyed by Kind: an accepted reservation,
// the days that were lost to a concurrent booking, or a rejection reason.
type Outcome struct {
	Kind        OutcomeKind
	Reservation *Reservation
	Conflicts   []schedule.DateKey
	Reason      string
}

func Accepted(res *Reservation) *Outcome {
	return &Outcome{Kind: OutcomeAccepted, Reservation: res}
}

func Conflict(dates []schedule.DateKey) *Outcome {
	return &Outcome{Kind: OutcomeConflict, Conflicts: dates}
}

func Invalid(reason string) *Outcome {
	return &Outcome{Kind: OutcomeInvalid, Reason: reason}
}

func Transient() *Outcome {
	return &Outcome{Kind: OutcomeTransient}
}
