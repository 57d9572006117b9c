package chart

import (
	"fmt"

	"github.com/seenimoa/radialchart/internal/scale"
	"github.com/seenimoa/radialchart/pkg/models"
	"github.com/seenimoa/radialchart/pkg/utils"
)

// Label placement window, in degrees of the bisecting angle minus 90.
// Categories whose labels fall in this window sit near the radial axis
// labels, so their text starts further along the arc.
const (
	labelWindowLow  = 50
	labelWindowHigh = 120
)

func buildGridlines(r *scale.Radial, opts Options) []Gridline {
	format := r.TickFormat(opts.TickFormatCount, opts.TickSpecifier)
	ticks := r.Ticks(opts.TickCount)
	out := make([]Gridline, len(ticks))
	for i, v := range ticks {
		out[i] = Gridline{Value: v, Radius: r.Radius(v), Label: format(v)}
	}
	return out
}

func buildLegend(segments []models.SegmentName, color *scale.Ordinal, opts Options) Legend {
	l := Legend{
		X:         opts.LegendX,
		Y:         opts.LegendY,
		RowHeight: opts.LegendRowHeight,
		Swatch:    opts.LegendSwatch,
		FontSize:  opts.LegendFontSize,
		Entries:   make([]LegendEntry, len(segments)),
	}
	for i, s := range segments {
		l.Entries[i] = LegendEntry{
			Segment: s,
			Color:   color.Color(s),
			Y:       float64(i) * opts.LegendRowHeight,
		}
	}
	return l
}

func buildLabels(categories []models.Category, band *scale.Band, opts Options) []CategoryLabel {
	r := opts.InnerRadius - opts.LabelOffset
	out := make([]CategoryLabel, len(categories))
	for i, c := range categories {
		start, _ := band.Angle(c)
		mid := start + band.Bandwidth()/2
		deg := LabelDegrees(mid)
		offset, dy := LabelPlacement(deg)
		out[i] = CategoryLabel{
			Category: c,
			ArcID:    fmt.Sprintf("categoryArc%d", i),
			Path: ArcPath(ArcSpec{
				InnerRadius: r,
				OuterRadius: r,
				StartAngle:  start,
				EndAngle:    start + band.Bandwidth(),
				PadAngle:    opts.PadAngle,
				PadRadius:   opts.InnerRadius,
			}, opts.Digits),
			MidAngle:    mid,
			Degrees:     deg,
			StartOffset: offset,
			DY:          dy,
		}
	}
	return out
}

// LabelDegrees converts a bisecting angle (radians, clockwise from 12
// o'clock) to the degree value LabelPlacement is keyed on.
func LabelDegrees(mid float64) float64 {
	return utils.Degrees(mid) - 90
}

// LabelPlacement picks where a category label starts along its arc and how
// far it is nudged down. Inside the (50°, 120°) window the text starts at
// 55% of the path, on its return leg, and is not nudged.
func LabelPlacement(deg float64) (startOffset string, dy float64) {
	if deg > labelWindowLow && deg < labelWindowHigh {
		return "55%", 0
	}
	return "5%", 10
}
