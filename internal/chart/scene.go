// Package chart builds the scene graph of a radial stacked-bar chart: one
// annular arc per (segment, category) pair, radial gridlines, a legend and
// curved category labels, plus the tooltip content each arc shows on hover.
//
// The scene is plain data. Writers in internal/report turn it into SVG, HTML
// or a YAML/JSON dump.
package chart

import "github.com/seenimoa/radialchart/pkg/models"

// Scene is the complete chart, in coordinates relative to its centre.
type Scene struct {
	Width       int     `json:"width"        yaml:"width"`
	Height      int     `json:"height"       yaml:"height"`
	CenterX     float64 `json:"center_x"     yaml:"center_x"`
	CenterY     float64 `json:"center_y"     yaml:"center_y"`
	InnerRadius float64 `json:"inner_radius" yaml:"inner_radius"`
	OuterRadius float64 `json:"outer_radius" yaml:"outer_radius"`

	Gridlines []Gridline      `json:"gridlines" yaml:"gridlines"`
	Series    []SeriesGroup   `json:"series"    yaml:"series"` // paint order
	Legend    Legend          `json:"legend"    yaml:"legend"`
	Labels    []CategoryLabel `json:"labels"    yaml:"labels"`
	Tooltip   TooltipConfig   `json:"tooltip"   yaml:"tooltip"`
}

// Gridline is a concentric circle at a tick value.
type Gridline struct {
	Value  float64 `json:"value"  yaml:"value"`
	Radius float64 `json:"radius" yaml:"radius"`
	Label  string  `json:"label"  yaml:"label"`
}

// SeriesGroup holds one segment's arcs, all in the segment's color.
type SeriesGroup struct {
	Key   models.SegmentName `json:"key"   yaml:"key"`
	Color string             `json:"color" yaml:"color"`
	Arcs  []Arc              `json:"arcs"  yaml:"arcs"`
}

// Arc is one stacked segment of one category.
type Arc struct {
	ID       string             `json:"id"       yaml:"id"`
	Segment  models.SegmentName `json:"segment"  yaml:"segment"`
	Category models.Category    `json:"category" yaml:"category"`
	Interval models.Interval    `json:"interval" yaml:"interval"`
	ArcSpec  `yaml:",inline"`
	Color    string  `json:"color"   yaml:"color"`
	Opacity  float64 `json:"opacity" yaml:"opacity"`
	Path     string  `json:"path"    yaml:"path"`
	Tooltip  string  `json:"tooltip" yaml:"tooltip"` // HTML fragment
}

// Legend lists the segments with their colors.
type Legend struct {
	X         float64       `json:"x"          yaml:"x"`
	Y         float64       `json:"y"          yaml:"y"`
	RowHeight float64       `json:"row_height" yaml:"row_height"`
	Swatch    float64       `json:"swatch"     yaml:"swatch"`
	FontSize  float64       `json:"font_size"  yaml:"font_size"`
	Entries   []LegendEntry `json:"entries"    yaml:"entries"`
}

// LegendEntry is one legend row.
type LegendEntry struct {
	Segment models.SegmentName `json:"segment" yaml:"segment"`
	Color   string             `json:"color"   yaml:"color"`
	Y       float64            `json:"y"       yaml:"y"` // row offset from the legend anchor
}

// CategoryLabel is text laid along an invisible arc inside the bars.
type CategoryLabel struct {
	Category    models.Category `json:"category"     yaml:"category"`
	ArcID       string          `json:"arc_id"       yaml:"arc_id"`
	Path        string          `json:"path"         yaml:"path"`
	MidAngle    float64         `json:"mid_angle"    yaml:"mid_angle"` // radians, clockwise from 12 o'clock
	Degrees     float64         `json:"degrees"      yaml:"degrees"`   // MidAngle in degrees minus 90
	StartOffset string          `json:"start_offset" yaml:"start_offset"`
	DY          float64         `json:"dy"           yaml:"dy"`
}

// TooltipConfig places the hover tooltip relative to the pointer.
type TooltipConfig struct {
	OffsetX float64 `json:"offset_x" yaml:"offset_x"`
	OffsetY float64 `json:"offset_y" yaml:"offset_y"`
}

// Arcs returns every arc in paint order.
func (s *Scene) Arcs() []Arc {
	var out []Arc
	for _, g := range s.Series {
		out = append(out, g.Arcs...)
	}
	return out
}

// Arc looks up the arc for a segment and category.
func (s *Scene) Arc(seg models.SegmentName, c models.Category) (Arc, bool) {
	for _, g := range s.Series {
		if g.Key != seg {
			continue
		}
		for _, a := range g.Arcs {
			if a.Category == c {
				return a, true
			}
		}
	}
	return Arc{}, false
}
