package chart

import (
	"math"

	"github.com/seenimoa/radialchart/pkg/utils"
)

// ArcSpec describes an annular sector. Angles are in radians, clockwise
// from 12 o'clock.
type ArcSpec struct {
	InnerRadius float64 `json:"inner_radius" yaml:"inner_radius"`
	OuterRadius float64 `json:"outer_radius" yaml:"outer_radius"`
	StartAngle  float64 `json:"start_angle"  yaml:"start_angle"`
	EndAngle    float64 `json:"end_angle"    yaml:"end_angle"`
	PadAngle    float64 `json:"pad_angle"    yaml:"pad_angle"`
	PadRadius   float64 `json:"pad_radius"   yaml:"pad_radius"` // 0 means sqrt(r0² + r1²)
}

// ArcPath returns the SVG path data for the sector, centred on the origin.
// The pad angle is turned into a constant-width gap measured at the pad
// radius, so both edges of adjacent sectors stay parallel.
func ArcPath(a ArcSpec, digits int) string {
	p := &Path{Digits: digits}
	drawArc(p, a)
	return p.String()
}

func drawArc(p *Path, a ArcSpec) {
	r0, r1 := a.InnerRadius, a.OuterRadius
	a0 := a.StartAngle - math.Pi/2
	a1 := a.EndAngle - math.Pi/2
	da := math.Abs(a1 - a0)
	cw := a1 > a0

	if r1 < r0 {
		r0, r1 = r1, r0
	}

	switch {
	case !(r1 > epsilon):
		// Degenerate: a point.
		p.MoveTo(0, 0)

	case da > tauEpsilon:
		// Full ring or disc.
		p.MoveTo(r1*math.Cos(a0), r1*math.Sin(a0))
		p.Arc(0, 0, r1, a0, a1, !cw)
		if r0 > epsilon {
			p.MoveTo(r0*math.Cos(a1), r0*math.Sin(a1))
			p.Arc(0, 0, r0, a1, a0, cw)
		}

	default:
		a01, a11, a00, a10 := a0, a1, a0, a1
		da0, da1 := da, da

		ap := a.PadAngle / 2
		if ap > epsilon {
			rp := a.PadRadius
			if rp == 0 {
				rp = math.Sqrt(r0*r0 + r1*r1)
			}
			if rp > epsilon {
				dir := 1.0
				if !cw {
					dir = -1
				}
				p0 := utils.Asin(rp / r0 * math.Sin(ap))
				p1 := utils.Asin(rp / r1 * math.Sin(ap))
				if da0 -= p0 * 2; da0 > epsilon {
					p0 *= dir
					a00 += p0
					a10 -= p0
				} else {
					da0 = 0
					a00 = (a0 + a1) / 2
					a10 = a00
				}
				if da1 -= p1 * 2; da1 > epsilon {
					p1 *= dir
					a01 += p1
					a11 -= p1
				} else {
					da1 = 0
					a01 = (a0 + a1) / 2
					a11 = a01
				}
			}
		}

		x01, y01 := r1*math.Cos(a01), r1*math.Sin(a01)
		x10, y10 := r0*math.Cos(a10), r0*math.Sin(a10)

		p.MoveTo(x01, y01)
		if da1 > epsilon {
			p.Arc(0, 0, r1, a01, a11, !cw)
		}
		if !(r0 > epsilon) || !(da0 > epsilon) {
			p.LineTo(x10, y10)
		} else {
			p.Arc(0, 0, r0, a10, a00, cw)
		}
	}
	p.ClosePath()
}
