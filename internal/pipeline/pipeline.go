// Package pipeline runs the chart stages in order: load the CSV, pivot it
// into a category-major matrix, and lay out the scene.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/seenimoa/radialchart/internal/chart"
	"github.com/seenimoa/radialchart/internal/config"
	"github.com/seenimoa/radialchart/internal/dataset"
	"github.com/seenimoa/radialchart/internal/stack"
	"github.com/seenimoa/radialchart/pkg/models"
)

// Input is everything one run needs.
type Input struct {
	Source      string
	Orientation models.Orientation
	Categories  []models.Category // empty = data order
	Lenient     bool
	Options     chart.Options

	Client *http.Client
	Logger *slog.Logger
}

// Result holds the output of every stage.
type Result struct {
	Table  *models.Table
	Load   *dataset.Report
	Matrix *models.Matrix
	Scene  *chart.Scene
}

// InputFromConfig builds the run input from configuration. source, when
// non-empty, replaces the configured data source.
func InputFromConfig(cfg *config.Config, source string) Input {
	if source == "" {
		source = cfg.Data.Source
	}
	return Input{
		Source:      source,
		Orientation: cfg.Orientation(),
		Categories:  cfg.Categories(),
		Lenient:     cfg.Data.Lenient,
		Options:     cfg.ChartOptions(),
	}
}

// Run executes the pipeline once. Any stage error aborts the run and
// nothing partial is returned.
func Run(ctx context.Context, in Input) (*Result, error) {
	logger := in.Logger
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	table, report, err := dataset.Load(ctx, in.Source, dataset.Options{
		Lenient: in.Lenient,
		Client:  in.Client,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	m, err := stack.Pivot(table, in.Orientation, in.Categories)
	if err != nil {
		return nil, fmt.Errorf("pivot %s: %w", in.Source, err)
	}

	scene, err := chart.Build(m, in.Options)
	if err != nil {
		return nil, err
	}

	logger.Info("chart built",
		"source", in.Source,
		"categories", len(m.Categories),
		"segments", len(m.Segments),
		"arcs", len(scene.Arcs()),
		"skipped_rows", len(report.Skipped),
		"elapsed", time.Since(start).Round(time.Millisecond))

	return &Result{Table: table, Load: report, Matrix: m, Scene: scene}, nil
}
