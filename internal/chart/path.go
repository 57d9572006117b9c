package chart

import (
	"math"
	"strconv"
	"strings"

	"github.com/seenimoa/radialchart/pkg/utils"
)

const (
	epsilon    = 1e-6
	tauEpsilon = utils.Tau - epsilon
)

// Path accumulates SVG path commands. Coordinates are rounded to Digits
// decimals; a negative Digits keeps full precision.
type Path struct {
	Digits int

	sb       strings.Builder
	x0, y0   float64 // start of current subpath
	x1, y1   float64 // current point
	hasPoint bool
}

// NewPath returns a path that rounds to 3 decimals.
func NewPath() *Path {
	return &Path{Digits: 3}
}

func (p *Path) num(v float64) string {
	if p.Digits >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
		v = utils.Round(v, p.Digits)
		if v == 0 {
			v = 0 // drop negative zero
		}
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (p *Path) write(cmd string, vals ...float64) {
	p.sb.WriteString(cmd)
	for i, v := range vals {
		if i > 0 {
			p.sb.WriteByte(',')
		}
		p.sb.WriteString(p.num(v))
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.x0, p.y0, p.x1, p.y1 = x, y, x, y
	p.hasPoint = true
	p.write("M", x, y)
}

// LineTo draws a straight line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.x1, p.y1 = x, y
	p.hasPoint = true
	p.write("L", x, y)
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() {
	if p.hasPoint {
		p.x1, p.y1 = p.x0, p.y0
		p.sb.WriteString("Z")
	}
}

// Arc draws a circular arc centred on (x, y) with radius r from angle a0 to
// a1, in radians measured from the positive x axis. ccw draws
// counterclockwise. A line joins the current point to the arc start when
// they differ.
func (p *Path) Arc(x, y, r, a0, a1 float64, ccw bool) {
	dx := r * math.Cos(a0)
	dy := r * math.Sin(a0)
	sx, sy := x+dx, y+dy
	sweep := 1
	da := a1 - a0
	if ccw {
		sweep = 0
		da = a0 - a1
	}

	switch {
	case !p.hasPoint:
		p.MoveTo(sx, sy)
	case math.Abs(p.x1-sx) > epsilon || math.Abs(p.y1-sy) > epsilon:
		p.LineTo(sx, sy)
	}

	if r == 0 {
		return
	}
	if da < 0 {
		da = math.Mod(da, utils.Tau) + utils.Tau
	}

	switch {
	case da > tauEpsilon:
		// Full circle: two half arcs.
		p.write("A", r, r)
		p.sb.WriteString(",0,1," + strconv.Itoa(sweep) + ",")
		p.write("", x-dx, y-dy)
		p.write("A", r, r)
		p.sb.WriteString(",0,1," + strconv.Itoa(sweep) + ",")
		p.write("", sx, sy)
		p.x1, p.y1 = sx, sy
	case da > epsilon:
		large := 0
		if da >= math.Pi {
			large = 1
		}
		ex, ey := x+r*math.Cos(a1), y+r*math.Sin(a1)
		p.write("A", r, r)
		p.sb.WriteString(",0," + strconv.Itoa(large) + "," + strconv.Itoa(sweep) + ",")
		p.write("", ex, ey)
		p.x1, p.y1 = ex, ey
	}
}

// String returns the path data.
func (p *Path) String() string {
	return p.sb.String()
}
