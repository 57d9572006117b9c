package scale

import (
	"math"
	"strconv"

	"github.com/seenimoa/radialchart/pkg/utils"
)

// Radial maps values to radii so that the area of a ring, not its radius,
// grows linearly with the value.
type Radial struct {
	d0, d1 float64
	r0, r1 float64
}

// NewRadial returns a square-root radial scale from [d0, d1] onto [r0, r1].
func NewRadial(d0, d1, r0, r1 float64) *Radial {
	return &Radial{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Radius maps v to a radius. NaN in gives NaN out.
func (r *Radial) Radius(v float64) float64 {
	if r.d1 == r.d0 {
		return signedSqrt((square(r.r0) + square(r.r1)) / 2)
	}
	t := (v - r.d0) / (r.d1 - r.d0)
	return signedSqrt(square(r.r0) + t*(square(r.r1)-square(r.r0)))
}

// Domain returns the value extent.
func (r *Radial) Domain() (float64, float64) { return r.d0, r.d1 }

// Range returns the radius extent.
func (r *Radial) Range() (float64, float64) { return r.r0, r.r1 }

// Ticks returns roughly count round values inside the domain, spaced by
// 1, 2 or 5 times a power of ten.
func (r *Radial) Ticks(count int) []float64 {
	return Ticks(r.d0, r.d1, count)
}

// TickFormat returns a label formatter suited to Ticks(count). Specifier "s"
// uses an SI prefix fixed by the domain's largest magnitude; anything else
// prints fixed-point with just enough digits.
func (r *Radial) TickFormat(count int, specifier string) func(float64) string {
	step := TickStep(r.d0, r.d1, count)
	if specifier == "s" {
		ref := math.Max(math.Abs(r.d0), math.Abs(r.d1))
		return utils.FormatPrefix(utils.PrecisionPrefix(step, ref), ref)
	}
	precision := -utils.Exponent(step)
	if precision < 0 {
		precision = 0
	}
	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
}

func square(x float64) float64 {
	return math.Copysign(x*x, x)
}

func signedSqrt(x float64) float64 {
	return math.Copysign(math.Sqrt(math.Abs(x)), x)
}
