package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAlways42CellsStartingSunday(t *testing.T) {
	today := NewDateKey(2025, time.June, 1)
	idx := NewIndex(nil)
	sel := NewSelection()

	// Sweep a couple of years of months, including leap February.
	for year := 2024; year <= 2025; year++ {
		for month := time.January; month <= time.December; month++ {
			cells := Generate(year, month, idx, sel, today)

			require.Len(t, cells, GridSize)
			assert.Equal(t, time.Sunday, cells[0].Date.Time().Weekday())

			// Cells are consecutive days.
			for i := 1; i < len(cells); i++ {
				assert.Equal(t, cells[i-1].Date.AddDays(1), cells[i].Date)
			}
		}
	}
}

func TestGenerateInCurrentMonthMatchesCalendarDays(t *testing.T) {
	cells := Generate(2025, time.June, NewIndex(nil), NewSelection(), NewDateKey(2025, time.June, 1))

	var inMonth []int
	for _, c := range cells {
		if c.InCurrentMonth {
			require.Equal(t, time.June, c.Date.Month)
			require.Equal(t, 2025, c.Date.Year)
			inMonth = append(inMonth, c.Date.Day)
		}
	}

	// Exactly the 30 days of June, in order.
	require.Len(t, inMonth, 30)
	for i, day := range inMonth {
		assert.Equal(t, i+1, day)
	}
}

func TestGenerateAnnotations(t *testing.T) {
	today := NewDateKey(2025, time.June, 15)
	idx := NewIndex([]Entry{{Dates: []DateKey{NewDateKey(2025, time.June, 20)}}})
	sel := NewSelection()
	sel.Toggle(NewDateKey(2025, time.June, 25), idx, today)

	cells := Generate(2025, time.June, idx, sel, today)

	byDate := make(map[DateKey]Cell, len(cells))
	for _, c := range cells {
		byDate[c.Date] = c
	}

	assert.True(t, byDate[NewDateKey(2025, time.June, 14)].IsPast)
	assert.False(t, byDate[NewDateKey(2025, time.June, 15)].IsPast, "today itself is not past")
	assert.True(t, byDate[NewDateKey(2025, time.June, 20)].IsBooked)
	assert.True(t, byDate[NewDateKey(2025, time.June, 25)].IsSelected)
	assert.False(t, byDate[NewDateKey(2025, time.June, 26)].IsSelected)
}

func TestGenerateIsPureAcrossNavigation(t *testing.T) {
	today := NewDateKey(2025, time.June, 1)
	idx := NewIndex(nil)
	sel := NewSelection()

	first := Generate(2025, time.June, idx, sel, today)
	// Navigate away and back; no state is retained between renders.
	_ = Generate(2025, time.July, idx, sel, today)
	second := Generate(2025, time.June, idx, sel, today)

	assert.Equal(t, first, second)
}

func TestGenerateMonthStartingOnSunday(t *testing.T) {
	// June 2025 starts on a Sunday, so the grid starts on the 1st itself.
	cells := Generate(2025, time.June, NewIndex(nil), NewSelection(), NewDateKey(2025, time.June, 1))
	assert.Equal(t, NewDateKey(2025, time.June, 1), cells[0].Date)
}
