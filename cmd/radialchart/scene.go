package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seenimoa/radialchart/internal/pipeline"
	"github.com/seenimoa/radialchart/internal/report"
)

func newSceneCmd(a *app) *cobra.Command {
	var (
		format string
		data   dataFlags
	)
	cmd := &cobra.Command{
		Use:   "scene [csv]",
		Short: "Print the chart scene graph",
		Long: `Print the laid-out chart as data: every arc with its interval, radii,
angles and path, plus gridlines, legend and label placement.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applyDataFlags(cmd, &data)

			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			if f != report.FormatYAML && f != report.FormatJSON {
				return fmt.Errorf("scene format must be yaml or json, got %q", format)
			}

			res, err := pipeline.Run(cmd.Context(), pipeline.InputFromConfig(a.cfg, sourceArg(args)))
			if err != nil {
				return err
			}
			return report.Render(cmd.Context(), cmd.OutOrStdout(), f, res.Scene, a.cfg.PageOptions())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "yaml or json")
	addDataFlags(cmd, &data)
	return cmd
}
