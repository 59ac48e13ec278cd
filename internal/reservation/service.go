package reservation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/safariwheels/fleet-booking-backend/internal/schedule"
	"github.com/safariwheels/fleet-booking-backend/internal/vehicle"
)

// CreateRequest is a server-side reservation submission.
type CreateRequest struct {
	VehicleID       string
	Dates           []schedule.DateKey
	Customer        Customer
	SpecialRequests string
}

type Service interface {
	// Create validates the request against a fresh schedule snapshot,
	// prices it and hands it to the sink for arbitration.
	Create(ctx context.Context, req CreateRequest) (*Outcome, error)
	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	UpdateStatus(ctx context.Context, id string, status string) (*Reservation, error)

	// ReleaseStaleHolds cancels pending reservations older than ttl so
	// their days return to the pool. Run periodically by the janitor.
	ReleaseStaleHolds(ctx context.Context, ttl time.Duration) (int64, error)
}

type service struct {
	repo       Repository
	vehService vehicle.Service
	now        func() time.Time
}

func NewService(repo Repository, vehService vehicle.Service) Service {
	return &service{
		repo:       repo,
		vehService: vehService,
		now:        time.Now,
	}
}

// Create re-validates everything the client already checked: the vehicle
// must exist, no requested day may be in the past, and the request is priced
// from the rate on record rather than a client-supplied amount. The database
// still has the final word on conflicts; the snapshot check here only catches
// the ones already visible.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Outcome, error) {
	v, err := s.vehService.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	today := schedule.DateKeyFromTime(s.now())
	index := schedule.NewIndex(v.Schedule)

	var conflicts []schedule.DateKey
	selection := schedule.NewSelection()
	for _, d := range req.Dates {
		if d.Before(today) {
			return Invalid(fmt.Sprintf("cannot reserve past day %s", d)), nil
		}
		if index.IsBooked(d) {
			conflicts = append(conflicts, d)
			continue
		}
		if !selection.Contains(d) {
			selection.Toggle(d, index, today)
		}
	}
	if len(conflicts) > 0 {
		return Conflict(conflicts), nil
	}

	built, err := BuildRequest(req.VehicleID, selection, req.Customer, req.SpecialRequests, v.DailyRateCents)
	if err != nil {
		return nil, err
	}

	return s.repo.Reserve(ctx, built)
}

func (s *service) GetByID(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status string) (*Reservation, error) {
	st := Status(status)
	if st != StatusPending && st != StatusConfirmed && st != StatusCancelled {
		return nil, ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) ReleaseStaleHolds(ctx context.Context, ttl time.Duration) (int64, error) {
	cutoff := s.now().Add(-ttl)
	n, err := s.repo.CancelStalePending(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("release stale holds: %w", err)
	}
	if n > 0 {
		log.Printf("released %d stale pending reservations older than %s", n, ttl)
	}
	return n, nil
}
