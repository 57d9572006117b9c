package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/seenimoa/radialchart/internal/chart"
	"github.com/seenimoa/radialchart/web"
)

// ════════════════════════════════════════════════════════════════════
// Output Writer: orchestrates SVG, page template and scene dumps
// ════════════════════════════════════════════════════════════════════

// Format specifies the output format.
type Format string

const (
	FormatHTML Format = "html"
	FormatSVG  Format = "svg"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatPDF  Format = "pdf"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatHTML, FormatSVG, FormatJSON, FormatYAML, FormatPDF}
}

// ParseFormat accepts a format name or a file extension ("yml" is YAML).
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	switch s {
	case "", "htm", "html":
		return FormatHTML, nil
	case "yml", "yaml":
		return FormatYAML, nil
	}
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Ext returns the file extension for the format, dot included.
func (f Format) Ext() string {
	return "." + string(f)
}

// PageOptions controls the HTML page around the chart.
type PageOptions struct {
	Title   string
	Heading string // optional <h1> above the chart

	// ScriptURL loads the tooltip script from a URL instead of inlining it.
	ScriptURL string

	PDF PDFConfig
}

// DefaultPageOptions returns options for a standalone page.
func DefaultPageOptions() PageOptions {
	return PageOptions{
		Title: "Radial stacked bar chart",
		PDF:   DefaultPDFConfig(),
	}
}

type pageData struct {
	Title     string
	Heading   string
	SVG       template.HTML
	Script    template.JS
	ScriptURL string
}

var page = template.Must(template.New("page").Parse(pageTemplate))

// HTML renders the chart page: the inline SVG, the shared #tooltip element
// and the hover script.
func HTML(s *chart.Scene, opts PageOptions) (string, error) {
	data := pageData{
		Title:     opts.Title,
		Heading:   opts.Heading,
		SVG:       template.HTML(SVG(s)),
		ScriptURL: opts.ScriptURL,
	}
	if opts.ScriptURL == "" {
		data.Script = template.JS(web.TooltipScript())
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template execution: %w", err)
	}
	return buf.String(), nil
}

// Render writes the scene to w in the given format.
func Render(ctx context.Context, w io.Writer, f Format, s *chart.Scene, opts PageOptions) error {
	switch f {
	case FormatHTML, "":
		html, err := HTML(s, opts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return err
	case FormatSVG:
		return WriteSVG(w, s)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatPDF:
		html, err := HTML(s, opts)
		if err != nil {
			return err
		}
		return WritePDF(ctx, w, html, opts.PDF)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

// Bytes renders the scene into memory.
func Bytes(ctx context.Context, f Format, s *chart.Scene, opts PageOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(ctx, &buf, f, s, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Target is one output file.
type Target struct {
	Format Format
	Path   string
}

// TargetsFor derives one target per format from a base output path,
// swapping the extension for each extra format.
func TargetsFor(path string, primary Format, also ...Format) []Target {
	targets := []Target{{Format: primary, Path: path}}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	seen := map[Format]bool{primary: true}
	for _, f := range also {
		if seen[f] {
			continue
		}
		seen[f] = true
		targets = append(targets, Target{Format: f, Path: base + f.Ext()})
	}
	return targets
}

// WriteAll renders every target concurrently. The first failure cancels
// the remaining PDF conversions; files already written are left in place.
func WriteAll(ctx context.Context, s *chart.Scene, targets []Target, opts PageOptions) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, t := range targets {
		t := t
		g.Go(func() error {
			if err := writeFile(ctx, t, s, opts); err != nil {
				return fmt.Errorf("%s: %w", t.Path, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func writeFile(ctx context.Context, t Target, s *chart.Scene, opts PageOptions) error {
	// Render into memory first so a failed PDF conversion leaves no empty file.
	data, err := Bytes(ctx, t.Format, s, opts)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(t.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(t.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
