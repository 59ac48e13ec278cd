package schedule

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateKey identifies a calendar day independent of time-of-day and timezone.
// All availability and selection comparisons go through this type so that a
// booking made at 23:59 local time and one made at 00:01 UTC agree on which
// day they occupy.
type DateKey struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDateKey builds a DateKey from its components.
func NewDateKey(year int, month time.Month, day int) DateKey {
	return DateKey{Year: year, Month: month, Day: day}
}

// DateKeyFromTime strips the time-of-day from t.
// The wall-clock date of t is used as-is; callers decide the timezone
// before passing the value in.
func DateKeyFromTime(t time.Time) DateKey {
	y, m, d := t.Date()
	return DateKey{Year: y, Month: m, Day: d}
}

// ParseDateKey parses a "2006-01-02" string.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return DateKey{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateKeyFromTime(t), nil
}

// Time returns the UTC midnight instant of the day.
func (d DateKey) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the day n days after d (negative n goes backwards).
// Month and year overflow are normalized by the time package.
func (d DateKey) AddDays(n int) DateKey {
	return DateKeyFromTime(d.Time().AddDate(0, 0, n))
}

// Compare orders two days lexicographically by (year, month, day).
// It returns -1 if d is before other, 0 if equal, 1 if after.
func (d DateKey) Compare(other DateKey) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

func (d DateKey) Before(other DateKey) bool { return d.Compare(other) < 0 }

func (d DateKey) After(other DateKey) bool { return d.Compare(other) > 0 }

func (d DateKey) String() string {
	return d.Time().Format(dateLayout)
}

// MarshalJSON encodes the day as "2006-01-02".
func (d DateKey) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "2006-01-02" string.
func (d *DateKey) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDateKey(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
