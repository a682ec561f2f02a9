package dataset

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

// CleanReport summarizes a mean-imputation pass over the numeric columns.
type CleanReport struct {
	MissingBefore int
	MissingAfter  int
	// ImputedMeans records, per column header, the mean that replaced the
	// column's missing values. Columns with no missing values are absent.
	ImputedMeans map[string]float64
}

// CleanNumeric replaces every missing value in a numeric column with the
// column's arithmetic mean over its non-missing values. Non-numeric columns
// pass through untouched. The replacement preserves each column's mean.
func CleanNumeric(t *Table) (CleanReport, error) {
	report := CleanReport{ImputedMeans: make(map[string]float64)}

	for col := 0; col < t.NumColumns(); col++ {
		values, missing, numeric := numericColumn(t, col)
		if !numeric {
			continue
		}
		report.MissingBefore += len(missing)
		if len(missing) == 0 {
			continue
		}

		mean, err := stats.Mean(values)
		if err != nil {
			return report, fmt.Errorf("failed to compute mean for column %q: %w", t.Headers[col], err)
		}

		filled := strconv.FormatFloat(mean, 'f', -1, 64)
		for _, row := range missing {
			t.Rows[row][col] = filled
		}
		report.ImputedMeans[t.Headers[col]] = mean

		slog.Debug("Imputed missing values",
			slog.String("column", t.Headers[col]),
			slog.Int("count", len(missing)),
			slog.Float64("mean", mean))
	}

	// Imputation fills every missing cell it counted.
	report.MissingAfter = 0
	return report, nil
}

// numericColumn classifies column col. A column is numeric when it has at
// least one non-empty cell and every non-empty cell parses as a float.
// Returns the parsed non-missing values and the row indices of missing cells.
func numericColumn(t *Table, col int) (values []float64, missing []int, numeric bool) {
	for i, row := range t.Rows {
		cell := ""
		if col < len(row) {
			cell = strings.TrimSpace(row[col])
		}
		if cell == "" {
			missing = append(missing, i)
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, nil, false
		}
		values = append(values, v)
	}
	return values, missing, len(values) > 0
}
