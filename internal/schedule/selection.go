package schedule

import "sort"

// SelectionSet is the ordered set of days a customer intends to reserve.
// It belongs to one booking session: empty on open, mutated only through
// Toggle/Remove, cleared on successful submission or cancel, never persisted.
type SelectionSet struct {
	dates []DateKey // ascending, unique
}

// NewSelection returns an empty selection.
func NewSelection() *SelectionSet {
	return &SelectionSet{}
}

// Toggle flips the membership of a day. Past and booked days are rejected
// here rather than at submit time, so an invalid selection can never be
// constructed. Toggling the same selectable day twice restores the set.
func (s *SelectionSet) Toggle(d DateKey, index *AvailabilityIndex, today DateKey) {
	if d.Before(today) || index.IsBooked(d) {
		return
	}
	if s.Contains(d) {
		s.Remove(d)
		return
	}
	s.dates = append(s.dates, d)
	sort.Slice(s.dates, func(i, j int) bool { return s.dates[i].Before(s.dates[j]) })
}

// Remove drops a day from the selection if present.
func (s *SelectionSet) Remove(d DateKey) {
	for i, existing := range s.dates {
		if existing == d {
			s.dates = append(s.dates[:i], s.dates[i+1:]...)
			return
		}
	}
}

// Contains reports whether the day is selected.
func (s *SelectionSet) Contains(d DateKey) bool {
	for _, existing := range s.dates {
		if existing == d {
			return true
		}
	}
	return false
}

// Dates returns a copy of the selected days in ascending order.
func (s *SelectionSet) Dates() []DateKey {
	out := make([]DateKey, len(s.dates))
	copy(out, s.dates)
	return out
}

// Len returns the number of selected days.
func (s *SelectionSet) Len() int {
	return len(s.dates)
}

// Clear empties the selection.
func (s *SelectionSet) Clear() {
	s.dates = nil
}
