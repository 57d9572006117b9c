// Package models defines the core data structures used throughout radialchart.
package models

import "fmt"

// Category is an angular band label. Order is significant: it drives the
// angular layout and label placement.
type Category string

// SegmentName is a stack key. It is a distinct type from Category even when
// a dataset happens to use the same strings for both.
type SegmentName string

// Orientation describes which CSV axis holds the segments.
type Orientation string

const (
	// SegmentRows means the first column names a segment and every other
	// header column is a category.
	SegmentRows Orientation = "segment-rows"
	// CategoryRows means the first column names a category and every other
	// header column is a segment.
	CategoryRows Orientation = "category-rows"
)

// Valid reports whether o is a known orientation.
func (o Orientation) Valid() bool {
	return o == SegmentRows || o == CategoryRows
}

// Cell is one parsed CSV value.
type Cell struct {
	Column string  `json:"column" yaml:"column"`
	Raw    string  `json:"raw"    yaml:"raw"`    // text as read, used for display
	Value  float64 `json:"value"  yaml:"value"`
}

// Record is one CSV data row: a label from the first column plus one cell
// per remaining header column, in header order.
type Record struct {
	Line  int    `json:"line"  yaml:"line"` // 1-based line in the source
	Label string `json:"label" yaml:"label"`
	Cells []Cell `json:"cells" yaml:"cells"`
}

// Cell returns the cell for the given column.
func (r Record) Cell(column string) (Cell, bool) {
	for _, c := range r.Cells {
		if c.Column == column {
			return c, true
		}
	}
	return Cell{}, false
}

// Table is a parsed CSV: header plus records.
type Table struct {
	KeyColumn string   `json:"key_column" yaml:"key_column"`
	Columns   []string `json:"columns"    yaml:"columns"`
	Records   []Record `json:"records"    yaml:"records"`
}

// Labels returns the first-column values in row order.
func (t *Table) Labels() []string {
	out := make([]string, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.Label
	}
	return out
}

// Matrix is the category-major value grid the chart is built from.
type Matrix struct {
	Categories []Category    `json:"categories" yaml:"categories"`
	Segments   []SegmentName `json:"segments"   yaml:"segments"`
	Values     [][]float64   `json:"values"     yaml:"values"` // [category][segment]
	Raw        [][]string    `json:"-"          yaml:"-"`      // display text, same shape as Values
}

// NewMatrix builds a matrix from numeric values. Raw display text is derived
// from the values.
func NewMatrix(categories []Category, segments []SegmentName, values [][]float64) (*Matrix, error) {
	if len(values) != len(categories) {
		return nil, fmt.Errorf("matrix has %d rows, want %d", len(values), len(categories))
	}
	raw := make([][]string, len(values))
	for i, row := range values {
		if len(row) != len(segments) {
			return nil, fmt.Errorf("matrix row %q has %d values, want %d", categories[i], len(row), len(segments))
		}
		raw[i] = make([]string, len(row))
		for j, v := range row {
			raw[i][j] = FormatValue(v)
		}
	}
	return &Matrix{Categories: categories, Segments: segments, Values: values, Raw: raw}, nil
}

// Total returns the sum of all segment values for category row i.
func (m *Matrix) Total(i int) float64 {
	var sum float64
	for _, v := range m.Values[i] {
		sum += v
	}
	return sum
}

// Display returns the text shown for category row i and segment column j.
func (m *Matrix) Display(i, j int) string {
	if m.Raw != nil && i < len(m.Raw) && j < len(m.Raw[i]) && m.Raw[i][j] != "" {
		return m.Raw[i][j]
	}
	return FormatValue(m.Values[i][j])
}
