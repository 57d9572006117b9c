package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/seenimoa/radialchart/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print every configuration key with its value and where it came from:
a config file, a RADIALCHART_* environment variable, or the built-in
default. Fails when the configuration cannot produce a chart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if asYAML {
				data, err := yaml.Marshal(a.cfg)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprint(w, string(data))
				return a.cfg.Validate()
			}

			bold := color.New(color.Bold)
			dim := color.New(color.Faint)
			file := a.cfg.ConfigFile()
			if file == "" {
				file = "(none, using defaults)"
			}
			_, _ = bold.Fprintf(w, "config file: %s\n\n", file)

			for _, s := range a.cfg.Settings() {
				_, _ = fmt.Fprintf(w, "%s = %s %s\n", s.Key, s.Value, formatSource(s))
			}

			_, _ = fmt.Fprintln(w)
			if err := a.cfg.Validate(); err != nil {
				_, _ = color.New(color.FgRed).Fprintln(w, "✗ invalid")
				return err
			}
			_, _ = fmt.Fprintln(w, color.New(color.FgGreen).Sprint("✓ valid"), dim.Sprint("(chart can be rendered)"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the configuration as YAML")
	return cmd
}

// formatSource labels a setting's origin; env overrides name their variable.
func formatSource(s config.Setting) string {
	switch s.Source {
	case config.SourceEnv:
		return color.New(color.FgYellow).Sprintf("(env %s)", s.Env)
	case config.SourceConfig:
		return color.New(color.FgGreen).Sprint("(config)")
	default:
		return color.New(color.Faint).Sprint("(default)")
	}
}
