package schedule

import "time"

// GridSize is the fixed number of cells in a month view: 6 full weeks,
// enough to cover a 31-day month starting on any weekday.
const GridSize = 42

// Cell is one day of the rendered month grid.
type Cell struct {
	Date           DateKey `json:"date"`
	InCurrentMonth bool    `json:"in_current_month"`
	IsPast         bool    `json:"is_past"`
	IsBooked       bool    `json:"is_booked"`
	IsSelected     bool    `json:"is_selected"`
}

// Generate renders the 42-cell grid for the anchor month. The grid starts on
// the most recent Sunday on or before the 1st and runs 6 consecutive weeks,
// so leading and trailing cells belong to the adjacent months.
//
// The grid is a pure function of its arguments: month navigation simply calls
// Generate again with the anchor shifted, and "today" is evaluated once by
// the caller so every cell in one render agrees on the reference day.
func Generate(year int, month time.Month, index *AvailabilityIndex, selection *SelectionSet, today DateKey) []Cell {
	first := NewDateKey(year, month, 1)

	// Back up to the week start (Sunday).
	start := first.AddDays(-int(first.Time().Weekday()))

	cells := make([]Cell, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		d := start.AddDays(i)
		cells = append(cells, Cell{
			Date:           d,
			InCurrentMonth: d.Year == year && d.Month == month,
			IsPast:         d.Before(today),
			IsBooked:       index.IsBooked(d),
			IsSelected:     selection.Contains(d),
		})
	}
	return cells
}
