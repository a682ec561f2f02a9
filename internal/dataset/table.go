package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Table holds a loaded delimited dataset: one header row and the data rows
// as raw string cells. Cells stay strings until Records extracts typed rows,
// so cleaning can rewrite missing values in place.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Load reads a CSV dataset from disk.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	table, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return table, nil
}

// Parse reads a CSV dataset from a reader. A UTF-8 BOM is stripped if
// present (spreadsheet exports commonly carry one).
func Parse(r io.Reader) (*Table, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	// Remove BOM if present
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("dataset has no header row")
	}

	headers := records[0]
	rows := records[1:]

	// Pad short rows so every row has a cell per header; ragged trailing
	// cells show up as missing values rather than index panics.
	for i, row := range rows {
		if len(row) < len(headers) {
			padded := make([]string, len(headers))
			copy(padded, row)
			rows[i] = padded
		}
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.Headers)
}

// Column returns the values of column index col across all rows.
func (t *Table) Column(col int) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if col < len(row) {
			values[i] = row[col]
		}
	}
	return values
}
