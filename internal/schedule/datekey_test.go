package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKeyFromTimeStripsTimeOfDay(t *testing.T) {
	late := time.Date(2025, time.June, 10, 23, 59, 59, 0, time.UTC)
	early := time.Date(2025, time.June, 10, 0, 0, 1, 0, time.UTC)

	assert.Equal(t, DateKeyFromTime(late), DateKeyFromTime(early))
	assert.Equal(t, NewDateKey(2025, time.June, 10), DateKeyFromTime(late))
}

func TestDateKeyOrdering(t *testing.T) {
	cases := []struct {
		name string
		a, b DateKey
		want int
	}{
		{"equal", NewDateKey(2025, time.June, 10), NewDateKey(2025, time.June, 10), 0},
		{"earlier day", NewDateKey(2025, time.June, 9), NewDateKey(2025, time.June, 10), -1},
		{"earlier month", NewDateKey(2025, time.May, 31), NewDateKey(2025, time.June, 1), -1},
		{"earlier year", NewDateKey(2024, time.December, 31), NewDateKey(2025, time.January, 1), -1},
		{"later day", NewDateKey(2025, time.June, 11), NewDateKey(2025, time.June, 10), 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b))
			assert.Equal(t, tc.want < 0, tc.a.Before(tc.b))
			assert.Equal(t, tc.want > 0, tc.a.After(tc.b))
		})
	}
}

func TestDateKeyAddDaysNormalizesOverflow(t *testing.T) {
	// Crossing a month boundary
	assert.Equal(t, NewDateKey(2025, time.July, 1), NewDateKey(2025, time.June, 30).AddDays(1))
	// Crossing a year boundary backwards
	assert.Equal(t, NewDateKey(2024, time.December, 31), NewDateKey(2025, time.January, 1).AddDays(-1))
	// Leap day
	assert.Equal(t, NewDateKey(2024, time.February, 29), NewDateKey(2024, time.February, 28).AddDays(1))
}

func TestParseDateKey(t *testing.T) {
	d, err := ParseDateKey("2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, NewDateKey(2025, time.June, 10), d)

	_, err = ParseDateKey("10/06/2025")
	assert.Error(t, err)
}

func TestDateKeyJSONRoundTrip(t *testing.T) {
	d := NewDateKey(2025, time.June, 5)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-05"`, string(data))

	var back DateKey
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)
}
