package services

// recurrenceSpan is the number of consecutive (month, year) periods a
// recurring entry is materialized across at creation time.
const recurrenceSpan = 12

// period is a (month, year) pair.
type period struct {
	Month int
	Year  int
}

// expandPeriods returns n consecutive periods starting at (month, year),
// wrapping the year at month 13. With n=1 it returns the period itself.
func expandPeriods(month, year, n int) []period {
	periods := make([]period, 0, n)
	for i := 0; i < n; i++ {
		periods = append(periods, period{
			Month: (month+i-1)%12 + 1,
			Year:  year + (month+i-1)/12,
		})
	}
	return periods
}

// nextPeriod advances one month, wrapping the year.
func nextPeriod(month, year int) (int, int) {
	if month == 12 {
		return 1, year + 1
	}
	return month + 1, year
}
