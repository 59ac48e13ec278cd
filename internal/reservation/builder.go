package reservation

import (
	"strings"

	"github.com/safariwheels/fleet-booking-backend/internal/schedule"
)

// BuildRequest assembles a pending reservation from a valid selection and
// customer details. Validation runs in order and the first failure wins:
// non-empty selection, then each required customer field, then the length of
// the special-requests note. On success the total is priced from the daily
// rate and the selection size.
//
// The builder knows nothing about the network or storage; it is pure
// assembly, so it tests without any collaborator.
func BuildRequest(vehicleID string, selection *schedule.SelectionSet, customer Customer, specialRequests string, dailyRateCents int64) (*Reservation, error) {
	if selection.Len() == 0 {
		return nil, ErrEmptySelection
	}

	customer.FullName = strings.TrimSpace(customer.FullName)
	customer.Email = strings.TrimSpace(customer.Email)
	customer.Phone = strings.TrimSpace(customer.Phone)
	customer.IDNumber = strings.TrimSpace(customer.IDNumber)

	for _, field := range []struct {
		name  string
		value string
	}{
		{"full name", customer.FullName},
		{"email", customer.Email},
		{"phone", customer.Phone},
		{"ID number", customer.IDNumber},
	} {
		if field.value == "" {
			return nil, NewMissingFieldError(field.name)
		}
	}

	if len(specialRequests) > MaxSpecialRequests {
		return nil, ErrRequestTooLong
	}

	total, err := schedule.Total(dailyRateCents, selection.Len())
	if err != nil {
		return nil, err
	}

	return &Reservation{
		VehicleID:        vehicleID,
		Dates:            selection.Dates(),
		TotalAmountCents: total,
		Customer:         customer,
		SpecialRequests:  specialRequests,
		Status:           StatusPending,
	}, nil
}
