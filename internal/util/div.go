package util

import "math"

const divPlaces = 3

// SafeDiv returns a/b rounded to three decimal places. It reports false when
// b is zero instead of producing an infinity.
func SafeDiv(a, b float64) (float64, bool) {
	if b == 0 {
		return 0, false
	}
	scale := math.Pow10(divPlaces)
	q := math.Round(a/b*scale) / scale
	if q == 0 {
		// Avoid printing -0 for tiny negative quotients.
		q = 0
	}
	return q, true
}
