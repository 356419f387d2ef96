package workforce

import "time"

// PeriodWindow is a closed [Start, End] time range used for activity tests.
type PeriodWindow struct {
	Start time.Time
	End   time.Time
}

// CalendarYear returns the window [Jan 1, Dec 31] of the given year
func CalendarYear(year int) PeriodWindow {
	return PeriodWindow{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// YearEnd returns the Dec 31 boundary of the given year
func YearEnd(year int) time.Time {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day of the given month
func MonthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// MonthsBetween lists the first day of every month from January of
// startYear through December of endYear, in order.
func MonthsBetween(startYear, endYear int) []time.Time {
	var months []time.Time
	for y := startYear; y <= endYear; y++ {
		for m := time.January; m <= time.December; m++ {
			months = append(months, MonthStart(y, m))
		}
	}
	return months
}

// MonthKey formats a month column label, e.g. "2024-01"
func MonthKey(monthStart time.Time) string {
	return monthStart.Format("2006-01")
}
