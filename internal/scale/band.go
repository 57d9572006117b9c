// Package scale maps data values to visual coordinates: categories to angles
// (band), values to radii (square-root radial) and segments to colors
// (ordinal).
package scale

import (
	"math"
	"slices"

	"github.com/seenimoa/radialchart/pkg/models"
)

// Band maps each category to a contiguous angular range of equal width.
type Band struct {
	domain       []models.Category
	index        map[models.Category]int
	r0, r1       float64
	paddingInner float64
	paddingOuter float64
	align        float64

	step      float64
	bandwidth float64
	positions []float64
}

// NewBand returns a band scale over domain spanning [r0, r1], with the same
// fractional padding between and around bands, centered in the range.
// Repeated categories keep their first position.
func NewBand(domain []models.Category, r0, r1, padding float64) *Band {
	b := &Band{
		index:        make(map[models.Category]int, len(domain)),
		r0:           r0,
		r1:           r1,
		paddingInner: clamp01(padding),
		paddingOuter: padding,
		align:        0.5,
	}
	for _, c := range domain {
		if _, ok := b.index[c]; !ok {
			b.index[c] = len(b.domain)
			b.domain = append(b.domain, c)
		}
	}
	b.rescale()
	return b
}

func (b *Band) rescale() {
	n := len(b.domain)
	start, stop := b.r0, b.r1
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	b.step = (stop - start) / math.Max(1, float64(n)-b.paddingInner+b.paddingOuter*2)
	start += (stop - start - b.step*(float64(n)-b.paddingInner)) * b.align
	b.bandwidth = b.step * (1 - b.paddingInner)
	b.positions = make([]float64, n)
	for i := range b.positions {
		b.positions[i] = start + b.step*float64(i)
	}
	if reverse {
		slices.Reverse(b.positions)
	}
}

// Angle returns the start angle of category c. Unknown categories report
// (NaN, false).
func (b *Band) Angle(c models.Category) (float64, bool) {
	i, ok := b.index[c]
	if !ok {
		return math.NaN(), false
	}
	return b.positions[i], true
}

// MidAngle returns the bisecting angle of c's band.
func (b *Band) MidAngle(c models.Category) (float64, bool) {
	a, ok := b.Angle(c)
	return a + b.bandwidth/2, ok
}

// Bandwidth returns the angular width of each band, excluding padding.
func (b *Band) Bandwidth() float64 { return b.bandwidth }

// Step returns the distance between the starts of adjacent bands.
func (b *Band) Step() float64 { return b.step }

// PaddingInner returns the fraction of the step left between bands.
func (b *Band) PaddingInner() float64 { return b.paddingInner }

// PaddingOuter returns the outer padding, in steps.
func (b *Band) PaddingOuter() float64 { return b.paddingOuter }

// Domain returns a copy of the category order.
func (b *Band) Domain() []models.Category {
	return append([]models.Category(nil), b.domain...)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
