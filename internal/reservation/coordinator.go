package reservation

import (
	"context"
	"sync"
	"time"

	"github.com/safariwheels/fleet-booking-backend/internal/schedule"
)

// State of a booking session. A session is Submitting from the moment a
// confirmation is accepted client-side until the sink's verdict is applied;
// no state permits a second concurrent submission.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
)

// Coordinator drives one customer's booking session for one vehicle: it owns
// the availability snapshot, the in-progress day selection and the anchor
// month of the calendar view, and it arbitrates submission against the Sink.
//
// The snapshot may be stale by the time the customer confirms — another
// session can take the same days in between. The coordinator is therefore
// optimistic: it submits, lets the sink decide, and folds the verdict back
// into its local state so the calendar immediately reflects reality.
type Coordinator struct {
	mu        sync.Mutex
	vehicleID string
	rateCents int64
	index     *schedule.AvailabilityIndex
	selection *schedule.SelectionSet
	sink      Sink

	anchorYear  int
	anchorMonth time.Month

	state State
	epoch int // bumped on Cancel so a stale in-flight verdict is not applied

	now func() time.Time
}

// NewCoordinator opens a booking session over a freshly fetched vehicle
// schedule. The calendar opens on the current month.
func NewCoordinator(vehicleID string, dailyRateCents int64, entries []schedule.Entry, sink Sink) (*Coordinator, error) {
	if dailyRateCents < 0 {
		return nil, schedule.ErrNegativeRate
	}

	c := &Coordinator{
		vehicleID: vehicleID,
		rateCents: dailyRateCents,
		index:     schedule.NewIndex(entries),
		selection: schedule.NewSelection(),
		sink:      sink,
		state:     StateIdle,
		now:       time.Now,
	}
	today := c.today()
	c.anchorYear, c.anchorMonth = today.Year, today.Month
	return c, nil
}

func (c *Coordinator) today() schedule.DateKey {
	return schedule.DateKeyFromTime(c.now())
}

// NavigateMonth shifts the calendar view by delta months (±1 from the UI).
func (c *Coordinator) NavigateMonth(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	shifted := time.Date(c.anchorYear, c.anchorMonth+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	c.anchorYear, c.anchorMonth = shifted.Year(), shifted.Month()
}

// ToggleDate flips a day in the selection. Past and booked days are ignored.
func (c *Coordinator) ToggleDate(d schedule.DateKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.Toggle(d, c.index, c.today())
}

// Grid renders the current month view. "Today" is evaluated once per call so
// every cell agrees on the reference day.
func (c *Coordinator) Grid() []schedule.Cell {
	c.mu.Lock()
	defer c.mu.Unlock()
	return schedule.Generate(c.anchorYear, c.anchorMonth, c.index, c.selection, c.today())
}

// SelectedDates returns the current selection in ascending order.
func (c *Coordinator) SelectedDates() []schedule.DateKey {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.Dates()
}

// TotalCents prices the current selection.
func (c *Coordinator) TotalCents() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total, _ := schedule.Total(c.rateCents, c.selection.Len())
	return total
}

// State reports whether a submission is in flight.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsBooked reports the session's current view of a day's availability.
func (c *Coordinator) IsBooked(d schedule.DateKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index.IsBooked(d)
}

// Submit builds a reservation from the current selection and hands it to the
// sink. At most one submission is in flight per session; a second confirmation
// while one is pending fails with ErrSubmitInFlight without a sink call.
//
// The sink's verdict is folded back into the session:
//   - Accepted: the selection is cleared and the reserved days are merged
//     into the availability index.
//   - Conflict: exactly the lost days leave the selection and join the
//     index; the remainder stays selected with its total recomputed, so the
//     customer can re-confirm it.
//   - Invalid: nothing changes.
//   - A sink error is reported as a transient outcome; selection and index
//     stay untouched and the customer may retry.
//
// If the session was cancelled while the submission was in flight, the
// verdict is returned but not applied.
func (c *Coordinator) Submit(ctx context.Context, customer Customer, specialRequests string) (*Outcome, error) {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}

	req, err := BuildRequest(c.vehicleID, c.selection, customer, specialRequests, c.rateCents)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}

	c.state = StateSubmitting
	epoch := c.epoch
	c.mu.Unlock()

	out, sinkErr := c.sink.Reserve(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateIdle

	if sinkErr != nil {
		return Transient(), nil
	}

	if epoch != c.epoch {
		// Session was cancelled mid-flight; do not touch its state.
		return out, nil
	}

	switch out.Kind {
	case OutcomeAccepted:
		c.index.Add(req.Dates...)
		c.selection.Clear()
	case OutcomeConflict:
		for _, d := range out.Conflicts {
			c.selection.Remove(d)
		}
		c.index.Add(out.Conflicts...)
	}
	return out, nil
}

// Cancel closes the session: the selection is discarded and any in-flight
// submission's verdict will be ignored when it lands.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.Clear()
	c.epoch++
}
