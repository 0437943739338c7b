package hedgedtwr

import "math"

const (
	// daysPerYear is the annualization threshold and exponent base: spans
	// of more than one year are geometrically scaled back to a one-year
	// rate.
	daysPerYear = 365

	internalPrecision = 6
	displayPrecision  = 4
	percentPrecision  = 2
)

// Calculate computes the hedged time-weighted return of the series over
// totalDays calendar days.
//
// Each period value is hedge-adjusted, the per-period return ratios
// r_t = (V'_t − C_t) / V'_{t-1} are chained multiplicatively, and the
// resulting cumulative return is annualized when totalDays exceeds 365
// (365 itself is not annualized). The result is rounded to 6 decimal
// places, half away from zero.
//
// It fails with ErrInsufficientPeriods when the series has fewer than 2
// periods, and with a ZeroDenominatorError when an adjusted value used as
// a denominator is zero. A zero adjusted value for the final period is
// valid and yields a total-loss return of −1.
func Calculate(periods Series, totalDays int) (Return, error) {
	if len(periods) < 2 {
		return 0, ErrInsufficientPeriods
	}

	adjusted := make([]float64, len(periods))
	for i, p := range periods {
		adjusted[i] = p.AdjustedValue()
	}

	product := 1.0
	for i := 1; i < len(adjusted); i++ {
		// The guard must fire before the division: a zero denominator is a
		// caller error, never a NaN/Inf result.
		if adjusted[i-1] == 0 {
			return 0, &ZeroDenominatorError{Index: i}
		}
		product *= (adjusted[i] - periods[i].CashFlow) / adjusted[i-1]
	}

	twr := product - 1
	if totalDays > daysPerYear {
		// A negative growth factor has no real-valued fractional power; the
		// guard keeps NaN out, like the denominator guard above.
		if product < 0 {
			return 0, ErrNegativeCumulativeReturn
		}
		twr = math.Pow(1+twr, daysPerYear/float64(totalDays)) - 1
	}
	return Return(roundTo(twr, internalPrecision)), nil
}
