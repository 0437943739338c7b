package hedgedtwr

import "time"

// DateFormat is the format used to represent dates as strings, ISO-8601.
const DateFormat = "2006-01-02"

const day = 24 * time.Hour

// Date represents a calendar date with day-level granularity. Its only role
// here is deriving the day count that decides annualization.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, d int) Date {
	n := Date{year, month, d}
	n.y, n.m, n.d = n.time().Date()
	return n
}

// time returns the canonical representation of that day, midnight UTC.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// After reports whether d is after o.
func (d Date) After(o Date) bool { return d.time().After(o.time()) }

// Before reports whether d is before o.
func (d Date) Before(o Date) bool { return d.time().Before(o.time()) }

// Sub returns the number of calendar days from o to d, negative when d is
// before o.
func (d Date) Sub(o Date) int { return int(d.time().Sub(o.time()) / day) }

// Span returns the number of calendar days elapsed between the start and
// the end of a reporting window. It is the totalDays input of Calculate:
// a window of exactly one year (365 elapsed days) is not annualized.
func Span(from, to Date) int { return to.Sub(from) }

// CalculateBetween computes the hedged time-weighted return of the series
// over the reporting window [from, to], deriving the day count from the
// calendar span.
func CalculateBetween(periods Series, from, to Date) (Return, error) {
	return Calculate(periods, Span(from, to))
}
