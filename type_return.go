package hedgedtwr

// Return is a time-weighted return expressed as a decimal fraction
// (0.0543 for 5.43%), carried at the internal 6 decimal-place precision.
type Return float64

// Display formats the return for tables and charts, rounded to 4 decimal
// places. The string always carries exactly 4 digits after the point,
// e.g. "0.0397".
func (r Return) Display() string {
	return fixedString(float64(r), displayPrecision)
}

// Percent converts the return to its percentage representation.
func (r Return) Percent() Percent {
	return Percent(100 * float64(r))
}
