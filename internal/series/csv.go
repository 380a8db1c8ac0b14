package series

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions controls CSV ingestion.
type CSVOptions struct {
	Column    string // column name to read (default: first numeric column)
	HasHeader bool   // whether the first row is a header (default: true)
	Delimiter rune   // field delimiter (default: ',')
}

// DefaultCSVOptions returns the default CSV ingestion options.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV reads a series from a CSV file. Non-numeric and non-finite
// cells in the selected column are skipped.
func LoadCSV(path string, opts *CSVOptions) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := LoadReader(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadReader reads a series from an io.Reader, typically stdin.
func LoadReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	col := 0
	name := opts.Column
	start := 0
	if opts.HasHeader {
		header := records[0]
		start = 1
		if opts.Column != "" {
			col = -1
			for i, h := range header {
				if strings.EqualFold(strings.TrimSpace(h), opts.Column) {
					col = i
					break
				}
			}
			if col < 0 {
				return nil, fmt.Errorf("column %q not found in header %v", opts.Column, header)
			}
		} else if len(records) > 1 {
			// Pick the first column whose first data cell parses as a number.
			col = -1
			for i, cell := range records[1] {
				if _, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
					col = i
					name = strings.TrimSpace(header[i])
					break
				}
			}
			if col < 0 {
				return nil, fmt.Errorf("no numeric column found")
			}
		}
	}

	values := make([]float64, 0, len(records)-start)
	for _, rec := range records[start:] {
		if col >= len(rec) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no numeric values in column %d", col)
	}

	return New(values, name), nil
}
