// radialchart renders a radial stacked-bar chart from a CSV table.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seenimoa/radialchart/internal/config"
	rclog "github.com/seenimoa/radialchart/internal/log"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

// app holds the global flag values and the configuration they produce.
type app struct {
	cfg        *config.Config
	configFile string
	logLevel   string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "radialchart",
		Short: "Render a radial stacked-bar chart from a CSV table",
		Long: `radialchart reads a small CSV table and renders it as a radial stacked-bar
chart: one angular band per category, one stacked ring segment per series,
with gridlines, a legend, curved category labels and a hover tooltip.

The output is a self-contained HTML page by default; SVG, PDF and a
YAML/JSON dump of the scene graph are also available.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file path (default: ./config/config.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newSceneCmd(a))
	root.AddCommand(newServeCmd(a))
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

// setup loads configuration and configures logging and color output.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.noColor {
		color.NoColor = true
	}

	var err error
	if a.configFile != "" {
		a.cfg, err = config.LoadFromFile(a.configFile)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.logLevel != "" {
		a.cfg.Logging.Level = a.logLevel
	}

	if _, err := rclog.Setup(a.cfg.Logging.Level, a.cfg.Logging.Format); err != nil {
		return err
	}
	return nil
}

// --- Version Command ---

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "radialchart %s\n", version)
			_, _ = fmt.Fprintf(w, "  commit:  %s\n", commit)
			_, _ = fmt.Fprintf(w, "  built:   %s\n", date)
		},
	}
}
