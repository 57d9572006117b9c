package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/seenimoa/radialchart/pkg/models"
)

var (
	// ErrEmptyCell marks a blank value.
	ErrEmptyCell = errors.New("empty value")
	// ErrNotFinite marks NaN or infinite values.
	ErrNotFinite = errors.New("value is not a finite number")
	// ErrFieldCount marks a row whose width differs from the header.
	ErrFieldCount = errors.New("wrong number of fields")
)

// CellError describes one cell that failed to parse.
type CellError struct {
	Line   int
	Row    string // first-column label
	Column string
	Raw    string
	Err    error
}

func (e *CellError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d (%s): %v", e.Line, e.Row, e.Err)
	}
	return fmt.Sprintf("line %d (%s), column %q: %q: %v", e.Line, e.Row, e.Column, e.Raw, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }

// ParseValue converts one cell to a number. Surrounding whitespace and a
// trailing percent sign are ignored.
func ParseValue(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return 0, ErrEmptyCell
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, numErr.Err
		}
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

// Parse reads a CSV with a header row. The first column holds each row's
// label; every other column must hold a number. In strict mode all cell
// failures are returned together; in lenient mode failing rows are dropped.
func Parse(r io.Reader, opts Options) (*models.Table, *Report, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyData
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) < 2 {
		return nil, nil, fmt.Errorf("header needs a label column and at least one value column, got %d column(s)", len(header))
	}

	table := &models.Table{
		KeyColumn: header[0],
		Columns:   header[1:],
	}
	report := &Report{}

	var errs []error
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if isBlank(fields) {
			continue
		}

		rec, rowErrs := parseRecord(line, header, fields)
		if len(rowErrs) == 0 {
			table.Records = append(table.Records, rec)
			continue
		}

		joined := errors.Join(rowErrs...)
		if opts.Lenient {
			report.Skipped = append(report.Skipped, SkippedRow{Line: line, Label: rec.Label, Err: joined})
			opts.logger().Warn("skipping invalid row",
				"line", line,
				"label", rec.Label,
				"error", joined)
			continue
		}
		errs = append(errs, rowErrs...)
	}

	if len(errs) > 0 {
		return nil, nil, fmt.Errorf("parse csv: %w", errors.Join(errs...))
	}
	if len(table.Records) == 0 {
		return nil, nil, ErrEmptyData
	}
	report.Rows = len(table.Records)
	return table, report, nil
}

func parseRecord(line int, header, fields []string) (models.Record, []error) {
	rec := models.Record{
		Line:  line,
		Label: strings.TrimSpace(fields[0]),
	}
	if len(fields) != len(header) {
		return rec, []error{&CellError{
			Line: line,
			Row:  rec.Label,
			Err:  fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), len(header)),
		}}
	}

	var errs []error
	rec.Cells = make([]models.Cell, 0, len(header)-1)
	for i := 1; i < len(header); i++ {
		raw := strings.TrimSpace(fields[i])
		v, err := ParseValue(raw)
		if err != nil {
			errs = append(errs, &CellError{Line: line, Row: rec.Label, Column: header[i], Raw: raw, Err: err})
			continue
		}
		rec.Cells = append(rec.Cells, models.Cell{Column: header[i], Raw: raw, Value: v})
	}
	return rec, errs
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
