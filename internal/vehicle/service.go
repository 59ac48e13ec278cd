package vehicle

import (
	"context"
	"errors"
	"net/http"

	"github.com/safariwheels/fleet-booking-backend/internal/pkg/apperror"
)

type Service interface {
	// GetByID fetches a vehicle together with its booked-day schedule.
	// The booking flow cannot proceed without it: ErrNotFound and
	// ErrUnavailable are both hard stops.
	GetByID(ctx context.Context, id string) (*Vehicle, error)
	List(ctx context.Context, filter Filter) ([]*Vehicle, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id string) (*Vehicle, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		// Storage trouble: the caller cannot render a calendar, so
		// surface it as the provider being unavailable.
		return nil, apperror.Wrap(err, http.StatusServiceUnavailable, ErrUnavailable.Message)
	}
	return v, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Vehicle, error) {
	return s.repo.List(ctx, filter)
}
