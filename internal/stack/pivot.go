// Package stack turns a parsed table into a category-major matrix and stacks
// each category's segment values into cumulative intervals.
package stack

import (
	"errors"
	"fmt"

	"github.com/seenimoa/radialchart/pkg/models"
)

var (
	// ErrMissingCategory is returned when a configured category has no data.
	ErrMissingCategory = errors.New("category not present in data")

	// ErrDuplicateLabel is returned when two rows or columns share a name.
	ErrDuplicateLabel = errors.New("duplicate label")
)

// Pivot builds the matrix the chart is drawn from. With SegmentRows each
// table row is a segment and each column a category; with CategoryRows the
// reverse. categories fixes the angular order; when empty the data order is
// used.
func Pivot(t *models.Table, orientation models.Orientation, categories []models.Category) (*models.Matrix, error) {
	if t == nil {
		return nil, fmt.Errorf("pivot: table is nil")
	}

	var (
		catLabels []string // labels along the category axis, in data order
		segLabels []string // labels along the segment axis, in data order
	)
	switch orientation {
	case models.SegmentRows, "":
		catLabels, segLabels = t.Columns, t.Labels()
	case models.CategoryRows:
		catLabels, segLabels = t.Labels(), t.Columns
	default:
		return nil, fmt.Errorf("pivot: unknown orientation %q", orientation)
	}

	if err := checkUnique("segment", segLabels); err != nil {
		return nil, err
	}
	if err := checkUnique("category", catLabels); err != nil {
		return nil, err
	}

	order := categories
	if len(order) == 0 {
		order = make([]models.Category, len(catLabels))
		for i, c := range catLabels {
			order[i] = models.Category(c)
		}
	}

	segments := make([]models.SegmentName, len(segLabels))
	for i, s := range segLabels {
		segments[i] = models.SegmentName(s)
	}

	m := &models.Matrix{
		Categories: append([]models.Category(nil), order...),
		Segments:   segments,
		Values:     make([][]float64, len(order)),
		Raw:        make([][]string, len(order)),
	}

	for ci, c := range order {
		m.Values[ci] = make([]float64, len(segments))
		m.Raw[ci] = make([]string, len(segments))
		for si, s := range segments {
			cell, err := lookup(t, orientation, c, s)
			if err != nil {
				return nil, err
			}
			m.Values[ci][si] = cell.Value
			m.Raw[ci][si] = cell.Raw
		}
	}
	return m, nil
}

func lookup(t *models.Table, orientation models.Orientation, c models.Category, s models.SegmentName) (models.Cell, error) {
	rowLabel, column := string(s), string(c)
	if orientation == models.CategoryRows {
		rowLabel, column = string(c), string(s)
	}
	for _, r := range t.Records {
		if r.Label != rowLabel {
			continue
		}
		if cell, ok := r.Cell(column); ok {
			return cell, nil
		}
		break
	}
	return models.Cell{}, fmt.Errorf("%w: %q (segment %q)", ErrMissingCategory, c, s)
}

func checkUnique(kind string, labels []string) error {
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			return fmt.Errorf("%w: %s %q", ErrDuplicateLabel, kind, l)
		}
		seen[l] = true
	}
	return nil
}
