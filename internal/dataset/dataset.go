// Package dataset loads the chart's CSV table from a local file or an HTTP
// URL and parses every cell into a typed value.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/seenimoa/radialchart/pkg/models"
)

// ErrEmptyData is returned when the CSV has no header or no data rows.
var ErrEmptyData = errors.New("dataset has no data rows")

// ErrHTTP wraps a non-2xx response from a remote CSV source.
type ErrHTTP struct {
	URL        string
	StatusCode int
	Status     string
	Body       string
}

func (e *ErrHTTP) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d %s: %s", e.URL, e.StatusCode, e.Status, e.Body)
}

// HTTPClient is used for remote sources when Options.Client is nil.
var HTTPClient = &http.Client{
	Timeout: 30 * time.Second,
}

// Options controls loading.
type Options struct {
	// Lenient drops rows with unparseable cells instead of failing. Dropped
	// rows are logged at WARN and listed in the Report.
	Lenient bool
	Client  *http.Client
	Logger  *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// SkippedRow records a row dropped in lenient mode.
type SkippedRow struct {
	Line  int
	Label string
	Err   error
}

// Report summarises a load.
type Report struct {
	Source  string
	Rows    int
	Skipped []SkippedRow
}

// IsRemote reports whether source is an http(s) URL.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Load reads and parses the CSV at source, which is a file path or an
// http(s) URL. Any failure aborts the load; there are no retries.
func Load(ctx context.Context, source string, opts Options) (*models.Table, *Report, error) {
	if source == "" {
		return nil, nil, fmt.Errorf("load dataset: no source given")
	}

	rc, err := open(ctx, source, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset %s: %w", source, err)
	}
	defer rc.Close()

	table, report, err := Parse(rc, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset %s: %w", source, err)
	}
	report.Source = source

	opts.logger().Debug("dataset loaded",
		"source", source,
		"rows", report.Rows,
		"columns", len(table.Columns),
		"skipped", len(report.Skipped))
	return table, report, nil
}

func open(ctx context.Context, source string, opts Options) (io.ReadCloser, error) {
	if !IsRemote(source) {
		return os.Open(source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	client := opts.Client
	if client == nil {
		client = HTTPClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &ErrHTTP{
			URL:        source,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return resp.Body, nil
}
