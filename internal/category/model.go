package category

import (
	"net/http"
	"time"

	"github.com/safariwheels/fleet-booking-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "category not found")

// Category groups the fleet for browsing (e.g. SUV, Saloon, Van).
type Category struct {
	ID             string
	Title          string
	Description    string
	PriceFromCents int64
	Features       []string
	Popular        bool
	CreatedAt      time.Time
}
