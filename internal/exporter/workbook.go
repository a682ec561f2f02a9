package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"nutricli/internal/analytics"
	"nutricli/internal/dataset"
)

// Sheet names of the report workbook.
const (
	SheetAverages    = "Averages"
	SheetTopRecipes  = "Top Protein Recipes"
	SheetTopCuisines = "Top Cuisines"
)

// WorkbookWriter exports the computed tables as a single XLSX workbook so
// the results open directly in a spreadsheet.
type WorkbookWriter struct{}

// NewWorkbookWriter creates a new workbook writer instance
func NewWorkbookWriter() *WorkbookWriter {
	return &WorkbookWriter{}
}

// Write builds the report workbook at path with one sheet per table.
func (w *WorkbookWriter) Write(path string, aggs []analytics.DietAggregate, top []dataset.Record, cuisines []analytics.CuisineCount) error {
	slog.Info("Writing report workbook",
		slog.String("path", path),
		slog.Int("diet_types", len(aggs)),
		slog.Int("top_recipes", len(top)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := w.writeAverages(f, headerStyle, aggs); err != nil {
		return err
	}
	if err := w.writeTopRecipes(f, headerStyle, top); err != nil {
		return err
	}
	if err := w.writeTopCuisines(f, headerStyle, cuisines); err != nil {
		return err
	}

	// Drop the default sheet so the workbook opens on the averages.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to delete default sheet: %w", err)
	}
	idx, err := f.GetSheetIndex(SheetAverages)
	if err != nil {
		return fmt.Errorf("failed to look up sheet index: %w", err)
	}
	f.SetActiveSheet(idx)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (w *WorkbookWriter) writeAverages(f *excelize.File, headerStyle int, aggs []analytics.DietAggregate) error {
	rows := make([][]interface{}, 0, len(aggs)+1)
	rows = append(rows, []interface{}{"Diet Type", "Avg Protein (g)", "Avg Carbs (g)", "Avg Fat (g)", "Recipes"})
	for _, a := range aggs {
		rows = append(rows, []interface{}{a.Diet, a.AvgProtein, a.AvgCarbs, a.AvgFat, a.Recipes})
	}
	return writeSheet(f, SheetAverages, headerStyle, rows)
}

func (w *WorkbookWriter) writeTopRecipes(f *excelize.File, headerStyle int, top []dataset.Record) error {
	rows := make([][]interface{}, 0, len(top)+1)
	rows = append(rows, []interface{}{"Diet Type", "Recipe", "Cuisine", "Protein (g)", "Carbs (g)", "Fat (g)"})
	for _, r := range top {
		rows = append(rows, []interface{}{r.Diet, r.Recipe, r.Cuisine, r.Protein, r.Carbs, r.Fat})
	}
	return writeSheet(f, SheetTopRecipes, headerStyle, rows)
}

func (w *WorkbookWriter) writeTopCuisines(f *excelize.File, headerStyle int, cuisines []analytics.CuisineCount) error {
	rows := make([][]interface{}, 0, len(cuisines)+1)
	rows = append(rows, []interface{}{"Diet Type", "Cuisine", "Recipes"})
	for _, cc := range cuisines {
		rows = append(rows, []interface{}{cc.Diet, cc.Cuisine, cc.Count})
	}
	return writeSheet(f, SheetTopCuisines, headerStyle, rows)
}

func writeSheet(f *excelize.File, name string, headerStyle int, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(name, cellName, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, name, err)
		}
	}

	if len(rows) > 0 {
		lastCell, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
		if err != nil {
			return fmt.Errorf("failed to compute header range: %w", err)
		}
		if err := f.SetCellStyle(name, "A1", lastCell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header of %s: %w", name, err)
		}
	}

	return nil
}
