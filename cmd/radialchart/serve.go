package main

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seenimoa/radialchart/api"
	"github.com/seenimoa/radialchart/internal/pipeline"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		host string
		port int
		data dataFlags
	)
	cmd := &cobra.Command{
		Use:   "serve [csv]",
		Short: "Render once and serve the chart over HTTP",
		Long: `Render the chart once at startup and serve the result:

  GET /             HTML page with the hover tooltip
  GET /chart.svg    bare SVG
  GET /scene.json   scene graph
  GET /health       status
  GET /config       effective configuration

The data is read once; restart the server to pick up changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applyDataFlags(cmd, &data)
			if cmd.Flags().Changed("host") {
				a.cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration:\n%w", err)
			}

			res, err := pipeline.Run(cmd.Context(), pipeline.InputFromConfig(a.cfg, sourceArg(args)))
			if err != nil {
				return err
			}
			printLoadSummary(cmd, res)

			srv, err := api.NewServer(cmd.Context(), a.cfg, res.Scene, api.Options{
				Logger:  slog.Default(),
				Version: version,
			})
			if err != nil {
				return err
			}

			addr := a.cfg.Addr()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s http://%s/\n", color.New(color.FgCyan).Sprint("  ➜ serving"), addr)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "listen host (default: server.host)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default: server.port)")
	addDataFlags(cmd, &data)
	return cmd
}
