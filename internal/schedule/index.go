package schedule

// Entry holds the days occupied by one existing reservation.
// A vehicle carries one entry per reservation in its schedule.
type Entry struct {
	Dates []DateKey
}

// AvailabilityIndex answers "is this day booked?" in O(1) after flattening a
// vehicle's schedule entries once. It indexes every date it is given; hiding
// stale past bookings is the calendar's job via the IsPast flag.
type AvailabilityIndex struct {
	booked map[DateKey]struct{}
}

// NewIndex flattens all schedule entries into a single day set.
// Duplicate days across entries collapse. An empty or nil schedule marks
// nothing as booked.
func NewIndex(entries []Entry) *AvailabilityIndex {
	idx := &AvailabilityIndex{booked: make(map[DateKey]struct{})}
	for _, e := range entries {
		for _, d := range e.Dates {
			idx.booked[d] = struct{}{}
		}
	}
	return idx
}

// IsBooked reports whether the day is occupied by any schedule entry.
func (idx *AvailabilityIndex) IsBooked(d DateKey) bool {
	_, ok := idx.booked[d]
	return ok
}

// Add merges newly confirmed days into the index, so the calendar reflects a
// just-accepted reservation without re-fetching the schedule.
func (idx *AvailabilityIndex) Add(dates ...DateKey) {
	for _, d := range dates {
		idx.booked[d] = struct{}{}
	}
}

// Len returns the number of distinct booked days.
func (idx *AvailabilityIndex) Len() int {
	return len(idx.booked)
}
