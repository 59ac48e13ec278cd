package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safariwheels/fleet-booking-backend/internal/reservation"
	"github.com/safariwheels/fleet-booking-backend/internal/schedule"
)

type fakeService struct {
	outcome *reservation.Outcome
	err     error
	created []reservation.CreateRequest
}

func (f *fakeService) Create(_ context.Context, req reservation.CreateRequest) (*reservation.Outcome, error) {
	f.created = append(f.created, req)
	return f.outcome, f.err
}

func (f *fakeService) GetByID(context.Context, string) (*reservation.Reservation, error) {
	return nil, reservation.ErrNotFound
}

func (f *fakeService) List(context.Context, reservation.Filter) ([]*reservation.Reservation, int, error) {
	return nil, 0, nil
}

func (f *fakeService) UpdateStatus(context.Context, string, string) (*reservation.Reservation, error) {
	return nil, reservation.ErrNotFound
}

func (f *fakeService) ReleaseStaleHolds(context.Context, time.Duration) (int64, error) {
	return 0, nil
}

func newTestRouter(svc reservation.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1")
	RegisterRoutes(v1, NewHandler(svc))
	return r
}

const vehicleID = "6f1b24c0-0000-4000-8000-000000000001"

func createPayload() map[string]any {
	return map[string]any{
		"vehicle_id": vehicleID,
		"dates":      []string{"2025-06-05", "2025-06-07"},
		"full_name":  "Amina Odhiambo",
		"email":      "amina@example.com",
		"phone":      "+254700000000",
		"id_number":  "12345678",
	}
}

func postReservation(t *testing.T, router *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAccepted(t *testing.T) {
	svc := &fakeService{outcome: reservation.Accepted(&reservation.Reservation{
		ID:        "res-1",
		VehicleID: vehicleID,
		Dates: []schedule.DateKey{
			schedule.NewDateKey(2025, time.June, 5),
			schedule.NewDateKey(2025, time.June, 7),
		},
		TotalAmountCents: 2000,
		Status:           reservation.StatusPending,
	})}
	router := newTestRouter(svc)

	w := postReservation(t, router, createPayload())

	require.Equal(t, http.StatusCreated, w.Code)

	var body ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "res-1", body.ID)
	assert.Equal(t, int64(2000), body.TotalAmountCents)
	assert.Equal(t, "pending", body.Status)

	// The parsed dates made it through to the service.
	require.Len(t, svc.created, 1)
	assert.Equal(t, []schedule.DateKey{
		schedule.NewDateKey(2025, time.June, 5),
		schedule.NewDateKey(2025, time.June, 7),
	}, svc.created[0].Dates)
}

func TestCreateConflictNamesLostDates(t *testing.T) {
	lost := schedule.NewDateKey(2025, time.June, 7)
	svc := &fakeService{outcome: reservation.Conflict([]schedule.DateKey{lost})}
	router := newTestRouter(svc)

	w := postReservation(t, router, createPayload())

	require.Equal(t, http.StatusConflict, w.Code)

	var body ConflictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []schedule.DateKey{lost}, body.ConflictingDates)
}

func TestCreateInvalidOutcome(t *testing.T) {
	svc := &fakeService{outcome: reservation.Invalid("cannot reserve past day 2025-05-20")}
	router := newTestRouter(svc)

	w := postReservation(t, router, createPayload())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "past day")
}

func TestCreateTransientOutcomeIsRetryable(t *testing.T) {
	svc := &fakeService{outcome: reservation.Transient()}
	router := newTestRouter(svc)

	w := postReservation(t, router, createPayload())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCreateRejectsMalformedBody(t *testing.T) {
	svc := &fakeService{}
	router := newTestRouter(svc)

	payload := createPayload()
	payload["dates"] = []string{} // empty selection fails binding

	w := postReservation(t, router, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.created, "binding failures never reach the service")
}

func TestCreateRejectsBadDateFormat(t *testing.T) {
	svc := &fakeService{}
	router := newTestRouter(svc)

	payload := createPayload()
	payload["dates"] = []string{"07/06/2025"}

	w := postReservation(t, router, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.created)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	router := newTestRouter(&fakeService{})

	body, _ := json.Marshal(map[string]string{"status": "teleported"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/v1/reservations/"+vehicleID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
