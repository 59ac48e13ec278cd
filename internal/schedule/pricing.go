package schedule

import "errors"

var ErrNegativeRate = errors.New("daily rate cannot be negative")

// Total prices a stay: daily rate times the number of selected days.
// Amounts are integer cents to keep the arithmetic exact.
func Total(dailyRateCents int64, days int) (int64, error) {
	if dailyRateCents < 0 {
		return 0, ErrNegativeRate
	}
	return dailyRateCents * int64(days), nil
}
