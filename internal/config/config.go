// Package config handles configuration loading for radialchart.
// It supports YAML config files with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/seenimoa/radialchart/internal/chart"
	"github.com/seenimoa/radialchart/internal/report"
	"github.com/seenimoa/radialchart/pkg/models"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RADIALCHART"

// DataOrder as the only chart.categories entry keeps the categories in the
// order the CSV lists them.
const DataOrder = "data"

// DefaultCategories are the answer options of the household bills survey,
// in the order they go round the chart.
var DefaultCategories = []string{
	"Increased a lot",
	"Increased a little",
	"Stayed the same",
	"Decreased a little",
	"Decreased a lot",
	"Don’t know",
}

// Config represents the complete application configuration.
type Config struct {
	Chart   ChartConfig   `mapstructure:"chart"   yaml:"chart"`
	Data    DataConfig    `mapstructure:"data"    yaml:"data"`
	Output  OutputConfig  `mapstructure:"output"  yaml:"output"`
	Server  ServerConfig  `mapstructure:"server"  yaml:"server"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	v *viper.Viper
}

// ChartConfig holds the chart layout.
type ChartConfig struct {
	Title       string       `mapstructure:"title"        yaml:"title"`
	Width       int          `mapstructure:"width"        yaml:"width"`
	Height      int          `mapstructure:"height"       yaml:"height"`
	Margin      MarginConfig `mapstructure:"margin"       yaml:"margin"`
	InnerRadius float64      `mapstructure:"inner_radius" yaml:"inner_radius"`
	OuterRadius float64      `mapstructure:"outer_radius" yaml:"outer_radius"` // 0 = derived from size and margin
	DomainMax   float64      `mapstructure:"domain_max"   yaml:"domain_max"`
	BandPadding float64      `mapstructure:"band_padding" yaml:"band_padding"`
	PadAngle    float64      `mapstructure:"pad_angle"    yaml:"pad_angle"`
	Opacity     float64      `mapstructure:"opacity"      yaml:"opacity"`
	Palette     []string     `mapstructure:"palette"      yaml:"palette"`
	Categories  []string     `mapstructure:"categories"   yaml:"categories"` // empty = data order
	TickCount   int          `mapstructure:"tick_count"   yaml:"tick_count"`
	LabelOffset float64      `mapstructure:"label_offset" yaml:"label_offset"`
	LegendX     float64      `mapstructure:"legend_x"     yaml:"legend_x"`
	LegendY     float64      `mapstructure:"legend_y"     yaml:"legend_y"`
}

// MarginConfig is the space kept free around the chart, in pixels.
type MarginConfig struct {
	Top    float64 `mapstructure:"top"    yaml:"top"`
	Right  float64 `mapstructure:"right"  yaml:"right"`
	Bottom float64 `mapstructure:"bottom" yaml:"bottom"`
	Left   float64 `mapstructure:"left"   yaml:"left"`
}

// DataConfig says where the CSV comes from and how to read it.
type DataConfig struct {
	Source      string `mapstructure:"source"      yaml:"source"`      // file path or http(s) URL
	Orientation string `mapstructure:"orientation" yaml:"orientation"` // "segment-rows" or "category-rows"
	Lenient     bool   `mapstructure:"lenient"     yaml:"lenient"`
}

// OutputConfig holds where the rendered chart goes.
type OutputConfig struct {
	Path      string   `mapstructure:"path"       yaml:"path"`
	Format    string   `mapstructure:"format"     yaml:"format"` // html, svg, json, yaml, pdf
	Also      []string `mapstructure:"also"       yaml:"also"`   // extra formats written next to Path
	PDFEngine string   `mapstructure:"pdf_engine" yaml:"pdf_engine"`
}

// ServerConfig holds preview server settings.
type ServerConfig struct {
	Host            string   `mapstructure:"host"             yaml:"host"`
	Port            int      `mapstructure:"port"             yaml:"port"`
	CORSOrigins     []string `mapstructure:"cors_origins"     yaml:"cors_origins"`
	ShutdownTimeout int      `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"` // seconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.radialchart/config.yaml (home directory)
//  3. /etc/radialchart/config.yaml (system)
//
// Environment variables override config file values.
// Format: RADIALCHART_<SECTION>_<KEY>, e.g., RADIALCHART_DATA_SOURCE
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".radialchart"))
	v.AddConfigPath("/etc/radialchart")

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return unmarshal(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.v = v
	return &cfg, nil
}

// setDefaults sets the household bills chart as the default for every key.
func setDefaults(v *viper.Viper) {
	d := chart.DefaultOptions()

	// Chart defaults
	v.SetDefault("chart.title", "How have your household bills changed?")
	v.SetDefault("chart.width", d.Width)
	v.SetDefault("chart.height", d.Height)
	v.SetDefault("chart.margin.top", d.Margin.Top)
	v.SetDefault("chart.margin.right", d.Margin.Right)
	v.SetDefault("chart.margin.bottom", d.Margin.Bottom)
	v.SetDefault("chart.margin.left", d.Margin.Left)
	v.SetDefault("chart.inner_radius", d.InnerRadius)
	v.SetDefault("chart.outer_radius", 0)
	v.SetDefault("chart.domain_max", d.DomainMax)
	v.SetDefault("chart.band_padding", d.BandPadding)
	v.SetDefault("chart.pad_angle", d.PadAngle)
	v.SetDefault("chart.opacity", d.Opacity)
	v.SetDefault("chart.palette", d.Palette)
	v.SetDefault("chart.categories", DefaultCategories)
	v.SetDefault("chart.tick_count", d.TickCount)
	v.SetDefault("chart.label_offset", d.LabelOffset)
	v.SetDefault("chart.legend_x", d.LegendX)
	v.SetDefault("chart.legend_y", d.LegendY)

	// Data defaults
	v.SetDefault("data.source", "data/household_bills.csv")
	v.SetDefault("data.orientation", string(models.SegmentRows))
	v.SetDefault("data.lenient", false)

	// Output defaults
	v.SetDefault("output.path", "chart.html")
	v.SetDefault("output.format", string(report.FormatHTML))
	v.SetDefault("output.also", []string{})
	v.SetDefault("output.pdf_engine", "")

	// Server defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout", 10)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate reports every setting that cannot produce a chart.
func (c *Config) Validate() error {
	var errs []error
	if err := c.ChartOptions().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("chart: %w", err))
	}
	if len(c.Chart.Palette) == 0 {
		errs = append(errs, errors.New("chart: palette must list at least one color"))
	}
	if c.Chart.TickCount <= 0 {
		errs = append(errs, fmt.Errorf("chart: tick_count must be positive, got %d", c.Chart.TickCount))
	}
	if c.Data.Source == "" {
		errs = append(errs, errors.New("data: source is required"))
	}
	if !models.Orientation(c.Data.Orientation).Valid() {
		errs = append(errs, fmt.Errorf("data: unknown orientation %q", c.Data.Orientation))
	}
	if _, err := c.Formats(); err != nil {
		errs = append(errs, fmt.Errorf("output: %w", err))
	}
	switch report.PDFEngine(c.Output.PDFEngine) {
	case report.EngineAuto, report.EngineWKHTML, report.EngineChromium, report.EngineNone:
	default:
		errs = append(errs, fmt.Errorf("output: unknown pdf_engine %q", c.Output.PDFEngine))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server: port out of range: %d", c.Server.Port))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging: unknown format %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

// ChartOptions converts the chart section into layout options.
func (c *Config) ChartOptions() chart.Options {
	o := chart.DefaultOptions()
	cc := c.Chart
	o.Width = cc.Width
	o.Height = cc.Height
	o.Margin = chart.Margin{Top: cc.Margin.Top, Right: cc.Margin.Right, Bottom: cc.Margin.Bottom, Left: cc.Margin.Left}
	o.InnerRadius = cc.InnerRadius
	o.OuterRadius = cc.OuterRadius
	o.DomainMax = cc.DomainMax
	o.BandPadding = cc.BandPadding
	o.PadAngle = cc.PadAngle
	o.Opacity = cc.Opacity
	if len(cc.Palette) > 0 {
		o.Palette = append([]string(nil), cc.Palette...)
	}
	o.TickCount = cc.TickCount
	o.LabelOffset = cc.LabelOffset
	o.LegendX = cc.LegendX
	o.LegendY = cc.LegendY
	return o
}

// Categories returns the configured band order, or nil when the data
// order applies.
func (c *Config) Categories() []models.Category {
	if len(c.Chart.Categories) == 1 && strings.EqualFold(strings.TrimSpace(c.Chart.Categories[0]), DataOrder) {
		return nil
	}
	out := make([]models.Category, len(c.Chart.Categories))
	for i, s := range c.Chart.Categories {
		out[i] = models.Category(s)
	}
	return out
}

// Orientation returns the configured CSV layout.
func (c *Config) Orientation() models.Orientation {
	return models.Orientation(c.Data.Orientation)
}

// Formats returns the primary output format followed by the extra ones.
func (c *Config) Formats() ([]report.Format, error) {
	primary, err := report.ParseFormat(c.Output.Format)
	if err != nil {
		return nil, err
	}
	out := []report.Format{primary}
	for _, s := range c.Output.Also {
		f, err := report.ParseFormat(s)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// PageOptions returns the HTML page settings for the chart.
func (c *Config) PageOptions() report.PageOptions {
	opts := report.DefaultPageOptions()
	opts.Title = c.Chart.Title
	opts.PDF.Engine = report.PDFEngine(c.Output.PDFEngine)
	return opts
}

// Addr returns the preview server listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// ConfigFile returns the file the configuration was read from, if any.
func (c *Config) ConfigFile() string {
	if c.v == nil {
		return ""
	}
	return c.v.ConfigFileUsed()
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
