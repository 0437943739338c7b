package hedgedtwr

import (
	"errors"
	"fmt"
)

// ErrInsufficientPeriods is returned when the series is nil, empty or has a
// single period. TWR needs a starting and an ending valuation.
var ErrInsufficientPeriods = errors.New("at least 2 periods required for TWR calculation")

// ErrNegativeCumulativeReturn is returned when annualization is requested
// for a cumulative return below −100%. Geometric scaling has no real-valued
// result for a negative growth factor.
var ErrNegativeCumulativeReturn = errors.New("cannot annualize a cumulative return below -100%")

// ZeroDenominatorError is returned when a period return cannot be computed
// because the previous period's adjusted value, its denominator, is zero.
// A zero adjusted value is only tolerated for the last period of the series.
type ZeroDenominatorError struct {
	// Index is the period whose return could not be computed.
	Index int
}

func (e *ZeroDenominatorError) Error() string {
	return fmt.Sprintf("cannot compute return for period %d: adjusted value of period %d is zero", e.Index, e.Index-1)
}
