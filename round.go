package hedgedtwr

import "github.com/shopspring/decimal"

// roundTo rounds v to 'places' decimal digits, half away from zero. The
// float is first converted through its shortest decimal representation so
// the rounding operates on decimal digits, not on binary fractions.
func roundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// fixedString renders v rounded to 'places' decimal digits, half away from
// zero, always keeping exactly 'places' digits after the point.
func fixedString(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}
