package models

import "strconv"

// Interval is a stacked [Lower, Upper] offset pair.
type Interval struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
}

// Width returns Upper - Lower.
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// StackPoint is one category's interval within a series.
type StackPoint struct {
	Category Category `json:"category" yaml:"category"`
	Interval `yaml:",inline"`
}

// StackedSeries holds one segment's intervals, one per category, in category
// order.
type StackedSeries struct {
	Key    SegmentName  `json:"key"    yaml:"key"`
	Index  int          `json:"index"  yaml:"index"` // paint order
	Points []StackPoint `json:"points" yaml:"points"`
}

// FormatValue renders a value the way it would appear in the source CSV.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
