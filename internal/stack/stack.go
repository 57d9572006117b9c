package stack

import "github.com/seenimoa/radialchart/pkg/models"

// Stack converts the matrix into one series per segment, in segment order.
// Each series holds one [lower, upper] interval per category, built from a
// running sum over the segments before it, so later series sit on top.
func Stack(m *models.Matrix) []models.StackedSeries {
	series := make([]models.StackedSeries, len(m.Segments))
	sum := make([]float64, len(m.Categories))

	for si, key := range m.Segments {
		s := models.StackedSeries{
			Key:    key,
			Index:  si,
			Points: make([]models.StackPoint, len(m.Categories)),
		}
		for ci, c := range m.Categories {
			lower := sum[ci]
			sum[ci] += m.Values[ci][si]
			s.Points[ci] = models.StackPoint{
				Category: c,
				Interval: models.Interval{Lower: lower, Upper: sum[ci]},
			}
		}
		series[si] = s
	}
	return series
}

// ForCategory returns the intervals of category index ci across all series,
// in paint order.
func ForCategory(series []models.StackedSeries, ci int) []models.Interval {
	out := make([]models.Interval, 0, len(series))
	for _, s := range series {
		if ci < len(s.Points) {
			out = append(out, s.Points[ci].Interval)
		}
	}
	return out
}
