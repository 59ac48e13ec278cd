package vehicle

import (
	"net/http"
	"time"

	"github.com/safariwheels/fleet-booking-backend/internal/pkg/apperror"
	"github.com/safariwheels/fleet-booking-backend/internal/schedule"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "vehicle not found")
	ErrUnavailable = apperror.New(http.StatusServiceUnavailable, "vehicle schedule unavailable")
)

// Vehicle is a bookable unit of the fleet together with its schedule: one
// entry per non-cancelled reservation, holding the days that reservation
// occupies. The schedule is normalized once here at the provider boundary;
// downstream code can rely on every field being populated.
type Vehicle struct {
	ID                 string
	Model              string
	CategoryID         string
	CategoryTitle      string
	RegistrationNumber string
	ImageURL           string
	DailyRateCents     int64
	Schedule           []schedule.Entry
	CreatedAt          time.Time
}

// Filter defines parameters for listing the fleet.
type Filter struct {
	CategoryID string
}
