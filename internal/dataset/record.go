package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one recipe row with its semantic fields extracted and the
// macro quantities parsed. Records are immutable once extracted.
type Record struct {
	Diet    string
	Recipe  string
	Cuisine string
	Protein float64
	Carbs   float64
	Fat     float64
}

// Records extracts typed records from a table using resolved columns.
// Numeric cells must parse; run CleanNumeric first so missing values have
// been imputed.
func Records(t *Table, cols Columns) ([]Record, error) {
	records := make([]Record, 0, t.NumRows())

	for i, row := range t.Rows {
		protein, err := parseMacro(row, cols[FieldProtein])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad protein value: %w", i+1, err)
		}
		carbs, err := parseMacro(row, cols[FieldCarbs])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad carbs value: %w", i+1, err)
		}
		fat, err := parseMacro(row, cols[FieldFat])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad fat value: %w", i+1, err)
		}

		records = append(records, Record{
			Diet:    cell(row, cols[FieldDiet]),
			Recipe:  cell(row, cols[FieldRecipe]),
			Cuisine: cell(row, cols[FieldCuisine]),
			Protein: protein,
			Carbs:   carbs,
			Fat:     fat,
		})
	}

	return records, nil
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func parseMacro(row []string, col int) (float64, error) {
	raw := cell(row, col)
	if raw == "" {
		return 0, fmt.Errorf("empty value")
	}
	return strconv.ParseFloat(raw, 64)
}
