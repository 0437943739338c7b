package hedgedtwr

import "strings"

// Percent is a return expressed in percent points (3.97 for 3.97%).
type Percent float64

// Equal compares two percentages with some precision.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String formats the percentage with 2 decimal places and a trailing '%',
// e.g. "3.97%". Rounding is half away from zero on decimal digits.
func (p Percent) String() string {
	return fixedString(float64(p), percentPrecision) + "%"
}

// SignedString is like String with an explicit leading sign.
// 0 is represented as "-".
func (p Percent) SignedString() string {
	res := p.String()
	if res == "0.00%" {
		return "-"
	}
	if !strings.HasPrefix(res, "-") {
		return "+" + res
	}
	return res
}
