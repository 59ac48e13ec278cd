package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safariwheels/fleet-booking-backend/internal/schedule"
	"github.com/safariwheels/fleet-booking-backend/internal/vehicle"
)

type fakeVehicleService struct {
	vehicles map[string]*vehicle.Vehicle
}

func (f *fakeVehicleService) GetByID(_ context.Context, id string) (*vehicle.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, vehicle.ErrNotFound
	}
	return v, nil
}

func (f *fakeVehicleService) List(context.Context, vehicle.Filter) ([]*vehicle.Vehicle, error) {
	return nil, nil
}

// fakeRepository accepts every reserve attempt and remembers the request.
type fakeRepository struct {
	reserved []*Reservation
}

func (f *fakeRepository) Reserve(_ context.Context, res *Reservation) (*Outcome, error) {
	res.ID = "res-1"
	f.reserved = append(f.reserved, res)
	return Accepted(res), nil
}

func (f *fakeRepository) GetByID(context.Context, string) (*Reservation, error) {
	return nil, ErrNotFound
}

func (f *fakeRepository) List(context.Context, Filter) ([]*Reservation, int, error) {
	return nil, 0, nil
}

func (f *fakeRepository) UpdateStatus(context.Context, string, Status) error {
	return nil
}

func (f *fakeRepository) CancelStalePending(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func newTestService(repo Repository, booked ...schedule.DateKey) *service {
	veh := &vehicle.Vehicle{
		ID:             "veh-1",
		Model:          "Land Cruiser",
		DailyRateCents: 1500,
	}
	if len(booked) > 0 {
		veh.Schedule = []schedule.Entry{{Dates: booked}}
	}

	return &service{
		repo:       repo,
		vehService: &fakeVehicleService{vehicles: map[string]*vehicle.Vehicle{"veh-1": veh}},
		now: func() time.Time {
			return time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
		},
	}
}

func TestServiceCreatePricesFromRateOnRecord(t *testing.T) {
	repo := &fakeRepository{}
	svc := newTestService(repo)

	out, err := svc.Create(context.Background(), CreateRequest{
		VehicleID: "veh-1",
		Dates: []schedule.DateKey{
			schedule.NewDateKey(2025, time.June, 5),
			schedule.NewDateKey(2025, time.June, 7),
		},
		Customer: validCustomer(),
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeAccepted, out.Kind)

	require.Len(t, repo.reserved, 1)
	assert.Equal(t, int64(3000), repo.reserved[0].TotalAmountCents)
	assert.Equal(t, StatusPending, repo.reserved[0].Status)
}

func TestServiceCreateVehicleNotFound(t *testing.T) {
	svc := newTestService(&fakeRepository{})

	_, err := svc.Create(context.Background(), CreateRequest{
		VehicleID: "missing",
		Dates:     []schedule.DateKey{schedule.NewDateKey(2025, time.June, 5)},
		Customer:  validCustomer(),
	})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestServiceCreateRejectsPastDays(t *testing.T) {
	repo := &fakeRepository{}
	svc := newTestService(repo)

	out, err := svc.Create(context.Background(), CreateRequest{
		VehicleID: "veh-1",
		Dates:     []schedule.DateKey{schedule.NewDateKey(2025, time.May, 20)},
		Customer:  validCustomer(),
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeInvalid, out.Kind)
	assert.Empty(t, repo.reserved, "invalid requests must not reach the sink")
}

func TestServiceCreateReportsVisibleConflicts(t *testing.T) {
	repo := &fakeRepository{}
	taken := schedule.NewDateKey(2025, time.June, 7)
	svc := newTestService(repo, taken)

	out, err := svc.Create(context.Background(), CreateRequest{
		VehicleID: "veh-1",
		Dates: []schedule.DateKey{
			schedule.NewDateKey(2025, time.June, 5),
			taken,
		},
		Customer: validCustomer(),
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeConflict, out.Kind)
	assert.Equal(t, []schedule.DateKey{taken}, out.Conflicts)
	assert.Empty(t, repo.reserved, "visible conflicts are reported without a sink call")
}

func TestServiceCreateDeduplicatesDays(t *testing.T) {
	repo := &fakeRepository{}
	svc := newTestService(repo)
	d := schedule.NewDateKey(2025, time.June, 5)

	out, err := svc.Create(context.Background(), CreateRequest{
		VehicleID: "veh-1",
		Dates:     []schedule.DateKey{d, d, d},
		Customer:  validCustomer(),
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeAccepted, out.Kind)

	require.Len(t, repo.reserved, 1)
	assert.Equal(t, []schedule.DateKey{d}, repo.reserved[0].Dates)
	assert.Equal(t, int64(1500), repo.reserved[0].TotalAmountCents)
}

func TestServiceCreateEmptySelection(t *testing.T) {
	repo := &fakeRepository{}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{
		VehicleID: "veh-1",
		Customer:  validCustomer(),
	})
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Empty(t, repo.reserved)
}

func TestServiceUpdateStatusValidation(t *testing.T) {
	svc := newTestService(&fakeRepository{})

	_, err := svc.UpdateStatus(context.Background(), "res-1", "teleported")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
