package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seenimoa/radialchart/internal/chart"
	"github.com/seenimoa/radialchart/internal/config"
	"github.com/seenimoa/radialchart/internal/stack"
	"github.com/seenimoa/radialchart/pkg/models"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func householdInput(t *testing.T) Input {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	in := InputFromConfig(cfg, filepath.Join("testdata", "household_bills.csv"))
	in.Logger = quietLogger()
	return in
}

func TestRunHouseholdBills(t *testing.T) {
	res, err := Run(context.Background(), householdInput(t))
	require.NoError(t, err)

	assert.Len(t, res.Matrix.Categories, 6)
	assert.Len(t, res.Matrix.Segments, 4)
	assert.Equal(t, models.Category("Increased a lot"), res.Matrix.Categories[0])
	assert.Equal(t, models.SegmentName("Regular household shop"), res.Matrix.Segments[0])
	assert.Len(t, res.Scene.Arcs(), 24)
	assert.Equal(t, 4, res.Load.Rows)

	// Energy bills, Increased a lot: 32 + 14 below it.
	arc, ok := res.Scene.Arc("Energy bills", "Increased a lot")
	require.True(t, ok)
	assert.Equal(t, models.Interval{Lower: 46, Upper: 84}, arc.Interval)
}

func TestRunEveryCategoryStacksToItsTotal(t *testing.T) {
	res, err := Run(context.Background(), householdInput(t))
	require.NoError(t, err)

	series := stack.Stack(res.Matrix)
	for ci := range res.Matrix.Categories {
		ivs := stack.ForCategory(series, ci)
		assert.Equal(t, 0.0, ivs[0].Lower)
		assert.InDelta(t, res.Matrix.Total(ci), ivs[len(ivs)-1].Upper, 1e-9)
	}
}

func TestRunMissingCategory(t *testing.T) {
	in := householdInput(t)
	in.Categories = append(in.Categories, "Not asked")

	_, err := Run(context.Background(), in)
	assert.True(t, errors.Is(err, stack.ErrMissingCategory), "err = %v", err)
}

func TestRunMissingFile(t *testing.T) {
	in := householdInput(t)
	in.Source = filepath.Join(t.TempDir(), "absent.csv")

	_, err := Run(context.Background(), in)
	assert.True(t, errors.Is(err, os.ErrNotExist), "err = %v", err)
}

func TestRunInvalidLayout(t *testing.T) {
	in := householdInput(t)
	in.Options = chart.DefaultOptions()
	in.Options.InnerRadius = 500

	_, err := Run(context.Background(), in)
	assert.Error(t, err)
}

func TestRunCategoryRowsFromFile(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Data.Orientation = string(models.CategoryRows)
	cfg.Chart.Categories = []string{config.DataOrder}

	in := InputFromConfig(cfg, filepath.Join("testdata", "two_by_two.csv"))
	in.Logger = quietLogger()
	res, err := Run(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, []models.Category{"A", "B"}, res.Matrix.Categories)
	assert.Equal(t, []models.SegmentName{"segment1", "segment2"}, res.Matrix.Segments)
	assert.Len(t, res.Scene.Arcs(), 4)

	want := map[[2]string]models.Interval{
		{"segment1", "A"}: {Lower: 0, Upper: 30},
		{"segment2", "A"}: {Lower: 30, Upper: 100},
		{"segment1", "B"}: {Lower: 0, Upper: 50},
		{"segment2", "B"}: {Lower: 50, Upper: 100},
	}
	for k, iv := range want {
		arc, ok := res.Scene.Arc(models.SegmentName(k[0]), models.Category(k[1]))
		require.True(t, ok, "arc %s/%s", k[0], k[1])
		assert.Equal(t, iv, arc.Interval, "arc %s/%s", k[0], k[1])
	}
}

func TestRunCategoryRowsWithSurveyOrder(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Data.Orientation = string(models.CategoryRows)

	in := InputFromConfig(cfg, filepath.Join("testdata", "two_by_two.csv"))
	in.Logger = quietLogger()
	_, err = Run(context.Background(), in)
	assert.ErrorIs(t, err, stack.ErrMissingCategory)
}
