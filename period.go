package hedgedtwr

// Period is one valuation period of the portfolio. It is a plain value
// object: the caller constructs it and the calculator never modifies it.
type Period struct {
	// PortfolioValue is V_t, the portfolio value in base currency at the
	// end of the period. Non-negative by convention.
	PortfolioValue float64
	// CashFlow is C_t, the net external cash flow during the period.
	// Positive for a deposit, negative for a withdrawal.
	CashFlow float64
	// HedgeRatio is FX_t, the proportion of currency exposure hedged.
	// Intended domain is [0,1] but out-of-range values are accepted; the
	// formula stays mathematically consistent, the result may be unusual.
	HedgeRatio float64
	// HedgeFactor is h_t, the hedge effectiveness. Intended domain [0,1],
	// unvalidated like HedgeRatio.
	HedgeFactor float64
}

// AdjustedValue returns V'_t = V_t × (1 − FX_t × (1 − h_t)), the portfolio
// value with the currency-hedge correction applied. It is the identity when
// HedgeRatio is 0 or HedgeFactor is 1, and V_t × h_t when HedgeRatio is 1.
func (p Period) AdjustedValue() float64 {
	return p.PortfolioValue * (1 - p.HedgeRatio*(1-p.HedgeFactor))
}

// Series is a chronologically ordered sequence of periods. The first period
// is the baseline: its cash flow is never used, only its adjusted value as
// the first denominator. A series needs at least 2 periods to yield a
// return.
type Series []Period
