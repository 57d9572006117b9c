package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/seenimoa/radialchart/internal/scale"
	"github.com/seenimoa/radialchart/internal/stack"
	"github.com/seenimoa/radialchart/pkg/models"
	"github.com/seenimoa/radialchart/pkg/utils"
)

// ErrInvalidValue is returned when the matrix holds a NaN or infinite value.
var ErrInvalidValue = errors.New("value is not a finite number")

// Scales bundles the three mappings the chart is drawn with.
type Scales struct {
	Angle  *scale.Band
	Radius *scale.Radial
	Color  *scale.Ordinal
}

// NewScales builds the angle, radius and color scales for m.
func NewScales(m *models.Matrix, opts Options) Scales {
	return Scales{
		Angle:  scale.NewBand(m.Categories, 0, utils.Tau, opts.BandPadding),
		Radius: scale.NewRadial(0, opts.DomainMax, opts.InnerRadius, opts.ResolvedOuterRadius()),
		Color:  scale.NewOrdinal(m.Segments, opts.Palette),
	}
}

// Build lays out the chart for m. It fails on empty input and on values
// that are not finite numbers, so no NaN reaches the geometry.
func Build(m *models.Matrix, opts Options) (*Scene, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("build chart: %w", err)
	}
	if m == nil || len(m.Categories) == 0 || len(m.Segments) == 0 {
		return nil, fmt.Errorf("build chart: need at least one category and one segment")
	}
	if err := checkFinite(m); err != nil {
		return nil, fmt.Errorf("build chart: %w", err)
	}

	sc := NewScales(m, opts)
	scene := &Scene{
		Width:       opts.Width,
		Height:      opts.Height,
		CenterX:     float64(opts.Width) / 2,
		CenterY:     float64(opts.Height) / 2,
		InnerRadius: opts.InnerRadius,
		OuterRadius: opts.ResolvedOuterRadius(),
		Tooltip: TooltipConfig{
			OffsetX: opts.TooltipOffsetX,
			OffsetY: opts.TooltipOffsetY,
		},
	}

	scene.Gridlines = buildGridlines(sc.Radius, opts)
	scene.Series = buildSeries(m, stack.Stack(m), sc, opts)
	scene.Legend = buildLegend(m.Segments, sc.Color, opts)
	scene.Labels = buildLabels(m.Categories, sc.Angle, opts)
	return scene, nil
}

func checkFinite(m *models.Matrix) error {
	if len(m.Values) != len(m.Categories) {
		return fmt.Errorf("matrix has %d rows for %d categories", len(m.Values), len(m.Categories))
	}
	for ci, row := range m.Values {
		if len(row) != len(m.Segments) {
			return fmt.Errorf("category %q has %d values for %d segments", m.Categories[ci], len(row), len(m.Segments))
		}
		for si, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: category %q, segment %q", ErrInvalidValue, m.Categories[ci], m.Segments[si])
			}
		}
	}
	return nil
}

// buildSeries emits one arc per stacked interval, segments outermost so
// later segments paint over earlier ones.
func buildSeries(m *models.Matrix, series []models.StackedSeries, sc Scales, opts Options) []SeriesGroup {
	tooltips := make([]string, len(m.Categories))
	for ci := range m.Categories {
		tooltips[ci] = TooltipHTML(m, ci, sc.Color)
	}

	groups := make([]SeriesGroup, len(series))
	for si, s := range series {
		color := sc.Color.Color(s.Key)
		g := SeriesGroup{Key: s.Key, Color: color, Arcs: make([]Arc, 0, len(s.Points))}
		for ci, pt := range s.Points {
			start, _ := sc.Angle.Angle(pt.Category)
			spec := ArcSpec{
				InnerRadius: sc.Radius.Radius(pt.Lower),
				OuterRadius: sc.Radius.Radius(pt.Upper),
				StartAngle:  start,
				EndAngle:    start + sc.Angle.Bandwidth(),
				PadAngle:    opts.PadAngle,
				PadRadius:   opts.InnerRadius,
			}
			g.Arcs = append(g.Arcs, Arc{
				ID:       fmt.Sprintf("arc-%d-%d", si, ci),
				Segment:  s.Key,
				Category: pt.Category,
				Interval: pt.Interval,
				ArcSpec:  spec,
				Color:    color,
				Opacity:  opts.Opacity,
				Path:     ArcPath(spec, opts.Digits),
				Tooltip:  tooltips[ci],
			})
		}
		groups[si] = g
	}
	return groups
}
