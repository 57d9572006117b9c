package utils

import "math"

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Asin is math.Asin with its argument clamped to [-1, 1], so ratios that
// overshoot by rounding still produce ±π/2 instead of NaN.
func Asin(x float64) float64 {
	switch {
	case x >= 1:
		return math.Pi / 2
	case x <= -1:
		return -math.Pi / 2
	default:
		return math.Asin(x)
	}
}

// Round rounds v to the given number of decimal digits.
func Round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}
