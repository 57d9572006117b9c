package main

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seenimoa/radialchart/internal/config"
	"github.com/seenimoa/radialchart/internal/pipeline"
	"github.com/seenimoa/radialchart/internal/report"
	"github.com/seenimoa/radialchart/pkg/models"
)

// stdoutPath writes the primary format to standard output.
const stdoutPath = "-"

type renderFlags struct {
	out    string
	format string
	also   []string
	data   dataFlags
}

// dataFlags override the data section and the category order.
type dataFlags struct {
	lenient     bool
	orientation string
	categories  []string
}

func newRenderCmd(a *app) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render [csv]",
		Short: "Render the chart to a file",
		Long: `Load the CSV (argument, or data.source from config), lay out the chart and
write it in the requested format. Extra formats given with --also are
written next to the main output with their own extension.

Examples:
  radialchart render data/household_bills.csv
  radialchart render --out out/bills.html --also svg,json
  radialchart render --format svg --out - > chart.svg
  radialchart render other.csv --orientation category-rows --categories data`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, args, f)
		},
	}
	cmd.Flags().StringVarP(&f.out, "out", "o", "", `output path, "-" for stdout (default: output.path)`)
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: html, svg, json, yaml, pdf")
	cmd.Flags().StringSliceVar(&f.also, "also", nil, "extra formats written alongside the output")
	addDataFlags(cmd, &f.data)
	return cmd
}

// addDataFlags registers the flags shared by every command that loads data.
func addDataFlags(cmd *cobra.Command, f *dataFlags) {
	cmd.Flags().BoolVar(&f.lenient, "lenient", false, "skip rows with invalid cells instead of failing")
	cmd.Flags().StringVar(&f.orientation, "orientation", "", "CSV layout: "+orientationHelp())
	cmd.Flags().StringSliceVar(&f.categories, "categories", nil,
		`band order, comma separated; "`+config.DataOrder+`" or "" keeps the CSV order (default: chart.categories)`)
}

// applyDataFlags copies changed data flags onto the configuration.
func (a *app) applyDataFlags(cmd *cobra.Command, f *dataFlags) {
	if cmd.Flags().Changed("lenient") {
		a.cfg.Data.Lenient = f.lenient
	}
	if cmd.Flags().Changed("orientation") {
		a.cfg.Data.Orientation = f.orientation
	}
	if cmd.Flags().Changed("categories") {
		a.cfg.Chart.Categories = categoryOrder(f.categories)
	}
}

// categoryOrder drops blank entries; an empty result or a lone "data"
// means data order.
func categoryOrder(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return []string{config.DataOrder}
	}
	return out
}

func (a *app) runRender(cmd *cobra.Command, args []string, f *renderFlags) error {
	a.applyDataFlags(cmd, &f.data)
	if cmd.Flags().Changed("format") {
		a.cfg.Output.Format = f.format
	}
	if cmd.Flags().Changed("also") {
		a.cfg.Output.Also = f.also
	}
	if cmd.Flags().Changed("out") {
		a.cfg.Output.Path = f.out
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}

	formats, err := a.cfg.Formats()
	if err != nil {
		return err
	}
	primary := formats[0]
	if slices.Contains(formats, report.FormatPDF) {
		if err := a.cfg.PageOptions().PDF.Available(); err != nil {
			return err
		}
	}

	res, err := pipeline.Run(cmd.Context(), pipeline.InputFromConfig(a.cfg, sourceArg(args)))
	if err != nil {
		return err
	}

	if a.cfg.Output.Path == stdoutPath {
		if len(formats) > 1 {
			return fmt.Errorf("--also cannot be combined with --out %s", stdoutPath)
		}
		return report.Render(cmd.Context(), cmd.OutOrStdout(), primary, res.Scene, a.cfg.PageOptions())
	}

	w := cmd.OutOrStdout()
	printLoadSummary(cmd, res)

	path := a.cfg.Output.Path
	if !cmd.Flags().Changed("out") {
		path = withFormatExt(path, primary)
	}
	targets := report.TargetsFor(path, primary, formats[1:]...)
	if err := report.WriteAll(cmd.Context(), res.Scene, targets, a.cfg.PageOptions()); err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	dim := color.New(color.Faint)
	for _, t := range targets {
		_, _ = fmt.Fprintf(w, "%s%s %s\n", green.Sprint("  ✓ "), t.Path, dim.Sprintf("(%s)", t.Format))
	}
	return nil
}

// printLoadSummary reports what was loaded, including every skipped row.
func printLoadSummary(cmd *cobra.Command, res *pipeline.Result) {
	w := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	yellow := color.New(color.FgYellow)

	_, _ = bold.Fprintf(w, "%s\n", res.Load.Source)
	_, _ = fmt.Fprintf(w, "  %d categories × %d segments, %d rows read\n",
		len(res.Matrix.Categories), len(res.Matrix.Segments), res.Load.Rows)
	for _, s := range res.Load.Skipped {
		_, _ = fmt.Fprintf(w, "%sline %d %q: %v\n", yellow.Sprint("  ! skipped "), s.Line, s.Label, s.Err)
	}
}

// withFormatExt swaps path's extension for the format's own when the
// current one names a different format.
func withFormatExt(path string, f report.Format) string {
	ext := filepath.Ext(path)
	if ext != "" {
		if cur, err := report.ParseFormat(ext); err == nil && cur == f {
			return path
		}
	}
	return strings.TrimSuffix(path, ext) + f.Ext()
}

func sourceArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// orientationHelp lists the accepted --orientation values.
func orientationHelp() string {
	return strings.Join([]string{string(models.SegmentRows), string(models.CategoryRows)}, ", ")
}
