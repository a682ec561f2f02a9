package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"nutricli/internal/analytics"
)

// DietAverageRow is the serialized shape of one aggregate row. The keys
// match the canonical dataset headers so downstream consumers of the
// results file see the same names the dataset uses.
type DietAverageRow struct {
	Diet    string  `json:"Diet_type"`
	Protein float64 `json:"Protein(g)"`
	Carbs   float64 `json:"Carbs(g)"`
	Fat     float64 `json:"Fat(g)"`
}

// RowsFromAggregates converts diet aggregates into their serialized rows,
// preserving order.
func RowsFromAggregates(aggs []analytics.DietAggregate) []DietAverageRow {
	rows := make([]DietAverageRow, len(aggs))
	for i, a := range aggs {
		rows[i] = DietAverageRow{
			Diet:    a.Diet,
			Protein: a.AvgProtein,
			Carbs:   a.AvgCarbs,
			Fat:     a.AvgFat,
		}
	}
	return rows
}

// JSONWriter writes indented JSON artifacts, creating parent directories
// as needed.
type JSONWriter struct{}

// NewJSONWriter creates a new JSON writer instance
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

// Write marshals v as indented JSON and writes it to path.
func (w *JSONWriter) Write(path string, v any) error {
	slog.Info("Writing JSON file", slog.String("path", path))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
