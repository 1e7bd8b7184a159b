// Package source turns tabular data (CSV files, SQLite queries) into grids
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/young1lin/consolegrid/table"
)

// ErrNoData is returned when a source yields no header and no records
var ErrNoData = errors.New("no data")

// CSVOptions controls CSV parsing
type CSVOptions struct {
	// Header makes the first record the column headers
	Header bool
	// Comma is the field delimiter; zero means ','
	Comma rune
	// Comment starts a comment line when non-zero
	Comment rune
}

// Records is raw tabular data: optional headers plus rows of fields
type Records struct {
	Header []string
	Rows   [][]string
}

// ReadCSV parses CSV from r. Records may have differing field counts.
func ReadCSV(r io.Reader, opts CSVOptions) (*Records, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = opts.Comment
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}

	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	recs := &Records{Rows: all}
	if opts.Header && len(all) > 0 {
		recs.Header, recs.Rows = all[0], all[1:]
	}
	return recs, nil
}

// LoadCSV reads a CSV file
func LoadCSV(path string, opts CSVOptions) (*Records, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()
	return ReadCSV(f, opts)
}

// Grid builds a grid with one column per header and one row per record
func (r *Records) Grid() (*table.Grid, error) {
	if len(r.Header) == 0 && len(r.Rows) == 0 {
		return nil, ErrNoData
	}

	g := table.NewGrid()
	for _, h := range r.Header {
		g.AddColumn(h)
	}
	for _, rec := range r.Rows {
		g.AddRow(rec...)
	}
	return g, nil
}
