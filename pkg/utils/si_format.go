// Package utils provides common formatting and geometry helpers for radialchart.
package utils

import (
	"math"
	"strconv"
)

// siPrefixes are the SI symbols from yocto (1e-24) to yotta (1e24).
var siPrefixes = []string{"y", "z", "a", "f", "p", "n", "µ", "m", "", "k", "M", "G", "T", "P", "E", "Z", "Y"}

// Exponent returns the decimal exponent of x as in scientific notation
// (floor(log10(|x|))). Zero, NaN and infinities report 0.
func Exponent(x float64) int {
	x = math.Abs(x)
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	// Parse the exponent from the 'e' formatting so rounding matches the
	// printed mantissa (9.999 at one digit is 1e+01, not 9e+00).
	s := strconv.FormatFloat(x, 'e', -1, 64)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == 'e' {
			e, err := strconv.Atoi(s[i+1:])
			if err != nil {
				return int(math.Floor(math.Log10(x)))
			}
			return e
		}
	}
	return int(math.Floor(math.Log10(x)))
}

// prefixExponent returns the SI exponent (a multiple of 3 in [-24, 24])
// used to display x.
func prefixExponent(x float64) int {
	e := int(math.Floor(float64(Exponent(x)) / 3))
	if e < -8 {
		e = -8
	}
	if e > 8 {
		e = 8
	}
	return e * 3
}

// SIPrefix returns the SI symbol chosen for a reference magnitude,
// e.g. "k" for 1500 and "" for 100.
func SIPrefix(ref float64) string {
	return siPrefixes[8+prefixExponent(ref)/3]
}

// PrecisionPrefix returns the number of fractional digits needed to tell
// apart values spaced step apart once scaled by the SI prefix of ref.
func PrecisionPrefix(step, ref float64) int {
	p := prefixExponent(ref) - Exponent(math.Abs(step))
	if p < 0 {
		return 0
	}
	return p
}

// FormatPrefix returns a formatter that scales every value by the SI prefix
// of ref and prints it with the given number of fractional digits.
//
//	f := FormatPrefix(1, 2500)
//	f(1200) // "1.2k"
func FormatPrefix(precision int, ref float64) func(float64) string {
	e := prefixExponent(ref)
	k := math.Pow(10, float64(-e))
	symbol := siPrefixes[8+e/3]
	return func(v float64) string {
		return strconv.FormatFloat(v*k, 'f', precision, 64) + symbol
	}
}
