package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ════════════════════════════════════════════════════════════════════
// PDF Export: HTML page → PDF via wkhtmltopdf / chromium headless
// ════════════════════════════════════════════════════════════════════

// ErrNoPDFEngine is returned when neither wkhtmltopdf nor a Chromium
// binary is on PATH.
var ErrNoPDFEngine = errors.New("no PDF engine found (install wkhtmltopdf or chromium)")

// PDFEngine specifies which engine to use for HTML→PDF conversion.
type PDFEngine string

const (
	EngineAuto     PDFEngine = ""
	EngineWKHTML   PDFEngine = "wkhtmltopdf"
	EngineChromium PDFEngine = "chromium"
	EngineNone     PDFEngine = "none"
)

var chromiumBinaries = []string{"chromium-browser", "chromium", "google-chrome", "google-chrome-stable"}

// PDFConfig holds configuration for PDF export.
type PDFConfig struct {
	Engine       PDFEngine
	PageSize     string
	Orientation  string
	MarginTop    string
	MarginBottom string
	MarginLeft   string
	MarginRight  string
}

// DefaultPDFConfig returns a square-friendly A4 portrait layout.
func DefaultPDFConfig() PDFConfig {
	return PDFConfig{
		Engine:       EngineAuto,
		PageSize:     "A4",
		Orientation:  "portrait",
		MarginTop:    "15mm",
		MarginBottom: "15mm",
		MarginLeft:   "10mm",
		MarginRight:  "10mm",
	}
}

// DetectPDFEngine checks which PDF engine is available on the system.
func DetectPDFEngine() PDFEngine {
	if _, err := exec.LookPath("wkhtmltopdf"); err == nil {
		return EngineWKHTML
	}
	if chromiumPath() != "" {
		return EngineChromium
	}
	return EngineNone
}

// Available reports whether the configured engine can run on this machine.
// The error wraps ErrNoPDFEngine when the engine is missing.
func (c PDFConfig) Available() error {
	switch c.Engine {
	case EngineAuto:
		if DetectPDFEngine() == EngineNone {
			return ErrNoPDFEngine
		}
	case EngineWKHTML:
		if _, err := exec.LookPath("wkhtmltopdf"); err != nil {
			return fmt.Errorf("%w: wkhtmltopdf not in PATH", ErrNoPDFEngine)
		}
	case EngineChromium:
		if chromiumPath() == "" {
			return fmt.Errorf("%w: chromium not in PATH", ErrNoPDFEngine)
		}
	case EngineNone:
		return ErrNoPDFEngine
	default:
		return fmt.Errorf("unsupported PDF engine: %s", c.Engine)
	}
	return nil
}

// WritePDF converts an HTML page to PDF and copies the result to w.
func WritePDF(ctx context.Context, w io.Writer, html string, cfg PDFConfig) error {
	engine := cfg.Engine
	if engine == EngineAuto {
		engine = DetectPDFEngine()
	}

	dir, err := os.MkdirTemp("", "radialchart-pdf-")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "chart.html")
	if err := os.WriteFile(src, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing temp HTML: %w", err)
	}
	dst := filepath.Join(dir, "chart.pdf")

	switch engine {
	case EngineWKHTML:
		err = convertWithWKHTML(ctx, src, dst, cfg)
	case EngineChromium:
		err = convertWithChromium(ctx, src, dst, cfg)
	case EngineNone:
		return ErrNoPDFEngine
	default:
		return fmt.Errorf("unsupported PDF engine: %s", engine)
	}
	if err != nil {
		return err
	}

	f, err := os.Open(dst)
	if err != nil {
		return fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("copying PDF: %w", err)
	}
	return nil
}

func convertWithWKHTML(ctx context.Context, src, dst string, cfg PDFConfig) error {
	args := []string{
		"--page-size", cfg.PageSize,
		"--orientation", cfg.Orientation,
		"--margin-top", cfg.MarginTop,
		"--margin-bottom", cfg.MarginBottom,
		"--margin-left", cfg.MarginLeft,
		"--margin-right", cfg.MarginRight,
		"--encoding", "UTF-8",
		"--enable-local-file-access",
		"--enable-javascript",
		"--quiet",
		src,
		dst,
	}
	cmd := exec.CommandContext(ctx, "wkhtmltopdf", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("wkhtmltopdf failed: %w\nOutput: %s", err, string(output))
	}
	return nil
}

func convertWithChromium(ctx context.Context, src, dst string, cfg PDFConfig) error {
	bin := chromiumPath()
	if bin == "" {
		return fmt.Errorf("chromium not found in PATH")
	}
	args := []string{
		"--headless",
		"--disable-gpu",
		"--no-sandbox",
		"--print-to-pdf=" + dst,
		"--print-to-pdf-no-header",
	}
	if strings.EqualFold(cfg.Orientation, "landscape") {
		args = append(args, "--landscape")
	}
	args = append(args, "file://"+src)

	cmd := exec.CommandContext(ctx, bin, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("chromium PDF export failed: %w\nOutput: %s", err, string(output))
	}
	return nil
}

func chromiumPath() string {
	for _, name := range chromiumBinaries {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}
