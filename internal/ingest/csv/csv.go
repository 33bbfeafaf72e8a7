// Package csv is a thin delimiter-separated loader that turns a raw
// CSV/TSV file into the column-major (header, values) pairs
// internal/engine.Analyze expects. It is CLI convenience only: the
// engine itself treats the tabular parser as an external commodity
// dependency.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"tabinfer/internal/engine"
)

// Options controls how the reader tokenizes the input.
type Options struct {
	// Delimiter defaults to ',' when zero.
	Delimiter rune
}

// LoadFile opens path and reads it as delimiter-separated text.
func LoadFile(path string, opts Options) ([]engine.Column, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open file %q: %w", path, err)
	}
	defer f.Close()

	return Load(f, opts)
}

// Load reads delimiter-separated text from r and transposes it into
// one engine.Column per header, in header order. The first record is
// treated as the header row. Short rows leave trailing columns with
// fewer values than row_count would otherwise suggest; the convention
// here is to pad missing trailing fields with the empty string so
// every column ends up the same length.
func Load(r io.Reader, opts Options) ([]engine.Column, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header row: %w", err)
	}

	columns := make([]engine.Column, len(headers))
	for i, h := range headers {
		columns[i].Header = h
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row: %w", err)
		}
		for i := range columns {
			if i < len(record) {
				columns[i].Values = append(columns[i].Values, record[i])
			} else {
				columns[i].Values = append(columns[i].Values, "")
			}
		}
	}

	return columns, nil
}
