package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewIndexFlattensEntries(t *testing.T) {
	entries := []Entry{
		{Dates: []DateKey{NewDateKey(2025, time.June, 10), NewDateKey(2025, time.June, 11)}},
		{Dates: []DateKey{NewDateKey(2025, time.June, 11), NewDateKey(2025, time.June, 20)}},
	}

	idx := NewIndex(entries)

	// Exactly the union of all entries, duplicates collapsed.
	assert.Equal(t, 3, idx.Len())
	assert.True(t, idx.IsBooked(NewDateKey(2025, time.June, 10)))
	assert.True(t, idx.IsBooked(NewDateKey(2025, time.June, 11)))
	assert.True(t, idx.IsBooked(NewDateKey(2025, time.June, 20)))
	assert.False(t, idx.IsBooked(NewDateKey(2025, time.June, 12)))
}

func TestNewIndexEmptySchedule(t *testing.T) {
	idx := NewIndex(nil)

	assert.Equal(t, 0, idx.Len())
	assert.False(t, idx.IsBooked(NewDateKey(2025, time.June, 10)))
}

func TestIndexAddMergesNewDays(t *testing.T) {
	idx := NewIndex(nil)
	idx.Add(NewDateKey(2025, time.June, 7), NewDateKey(2025, time.June, 8))

	assert.True(t, idx.IsBooked(NewDateKey(2025, time.June, 7)))
	assert.True(t, idx.IsBooked(NewDateKey(2025, time.June, 8)))

	// Re-adding an indexed day is harmless.
	idx.Add(NewDateKey(2025, time.June, 7))
	assert.Equal(t, 2, idx.Len())
}
