package chart

import (
	"fmt"
	"math"

	"github.com/seenimoa/radialchart/internal/scale"
)

// Margin is the space kept free around the chart, in pixels.
type Margin struct {
	Top    float64 `json:"top"    yaml:"top"`
	Right  float64 `json:"right"  yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left"   yaml:"left"`
}

// Max returns the widest side.
func (m Margin) Max() float64 {
	return math.Max(math.Max(m.Top, m.Right), math.Max(m.Bottom, m.Left))
}

// Options holds the layout parameters of the chart.
type Options struct {
	Width       int     // canvas width in pixels (default: 700)
	Height      int     // canvas height in pixels (default: 700)
	Margin      Margin  // default: 40 on every side
	InnerRadius float64 // radius of value 0 (default: 150)
	OuterRadius float64 // radius of DomainMax; 0 derives it from size and margin
	DomainMax   float64 // value mapped to OuterRadius (default: 100)

	BandPadding float64 // fraction of each band left empty (default: 0.04)
	PadAngle    float64 // gap between adjacent arcs in radians (default: 0.01)
	Opacity     float64 // arc opacity (default: 0.8)
	Palette     []string

	TickCount       int    // gridline count hint (default: 3)
	TickFormatCount int    // precision hint for gridline labels (default: 5)
	TickSpecifier   string // "s" for SI prefixes (default)

	LabelOffset float64 // category label arcs sit this far inside InnerRadius (default: 5)

	LegendX         float64 // legend anchor relative to centre (default: -80)
	LegendY         float64 // (default: -50)
	LegendRowHeight float64 // (default: 20)
	LegendSwatch    float64 // (default: 10)
	LegendFontSize  float64 // (default: 12)

	TooltipOffsetX float64 // tooltip position relative to the pointer (default: 25)
	TooltipOffsetY float64 // (default: -28)

	Digits int // decimals kept in path data (default: 3)
}

// DefaultOptions returns the layout of the household bills chart.
func DefaultOptions() Options {
	return Options{
		Width:           700,
		Height:          700,
		Margin:          Margin{Top: 40, Right: 40, Bottom: 40, Left: 40},
		InnerRadius:     150,
		DomainMax:       100,
		BandPadding:     0.04,
		PadAngle:        0.01,
		Opacity:         0.8,
		Palette:         append([]string(nil), scale.DefaultPalette...),
		TickCount:       3,
		TickFormatCount: 5,
		TickSpecifier:   "s",
		LabelOffset:     5,
		LegendX:         -80,
		LegendY:         -50,
		LegendRowHeight: 20,
		LegendSwatch:    10,
		LegendFontSize:  12,
		TooltipOffsetX:  25,
		TooltipOffsetY:  -28,
		Digits:          3,
	}
}

// ResolvedOuterRadius returns OuterRadius, or half the smaller canvas side
// minus the widest margin when OuterRadius is 0.
func (o Options) ResolvedOuterRadius() float64 {
	if o.OuterRadius > 0 {
		return o.OuterRadius
	}
	return math.Min(float64(o.Width), float64(o.Height))/2 - o.Margin.Max()
}

// Validate reports layouts that cannot be drawn.
func (o Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("chart size must be positive, got %dx%d", o.Width, o.Height)
	case o.InnerRadius < 0:
		return fmt.Errorf("inner radius must not be negative, got %v", o.InnerRadius)
	case o.ResolvedOuterRadius() <= o.InnerRadius:
		return fmt.Errorf("outer radius %v must exceed inner radius %v", o.ResolvedOuterRadius(), o.InnerRadius)
	case o.DomainMax <= 0:
		return fmt.Errorf("domain max must be positive, got %v", o.DomainMax)
	case o.BandPadding < 0 || o.BandPadding >= 1:
		return fmt.Errorf("band padding must be in [0, 1), got %v", o.BandPadding)
	case o.Opacity < 0 || o.Opacity > 1:
		return fmt.Errorf("opacity must be in [0, 1], got %v", o.Opacity)
	}
	return nil
}
