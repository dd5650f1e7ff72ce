// Package ingest reads the flat sales CSV into the in-memory record set the
// pipeline consumes.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"freshmarket-system/internal/pipeline"
)

// ErrMissingColumns marks a fatal schema error: the header lacks at least
// one required column, so no row can be processed.
var ErrMissingColumns = errors.New("missing required columns")

// ReadRecords parses CSV data into raw records keyed by column name. Row
// numbers are 1-based over the data rows (the header is row 0).
func ReadRecords(r io.Reader) ([]pipeline.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Ragged rows are a row-level problem, not a file-level one: short rows
	// surface as empty fields and get rejected by the validator.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ErrMissingColumns)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, col := range pipeline.RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	var records []pipeline.RawRecord
	for row := 1; ; row++ {
		line, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", row, err)
		}

		fields := make(map[string]string, len(pipeline.RequiredColumns))
		for _, col := range pipeline.RequiredColumns {
			if i := index[col]; i < len(line) {
				fields[col] = line[i]
			}
		}
		records = append(records, pipeline.RawRecord{Row: row, Fields: fields})
	}
	return records, nil
}

// LoadFile reads the sales CSV at path.
func LoadFile(path string) ([]pipeline.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sales csv: %w", err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
