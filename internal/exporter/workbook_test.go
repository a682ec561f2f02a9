package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"nutricli/internal/analytics"
	"nutricli/internal/dataset"
)

func TestWorkbookWriter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nutrition_report.xlsx")

	aggs := []analytics.DietAggregate{
		{Diet: "keto", AvgProtein: 30, AvgCarbs: 10, AvgFat: 22, Recipes: 2},
	}
	top := []dataset.Record{
		{Diet: "keto", Recipe: "Steak", Cuisine: "american", Protein: 45, Carbs: 1, Fat: 30},
	}
	cuisines := []analytics.CuisineCount{
		{Diet: "keto", Cuisine: "american", Count: 2},
	}

	writer := NewWorkbookWriter()
	require.NoError(t, writer.Write(path, aggs, top, cuisines))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, SheetAverages)
	assert.Contains(t, sheets, SheetTopRecipes)
	assert.Contains(t, sheets, SheetTopCuisines)
	assert.NotContains(t, sheets, "Sheet1")

	diet, err := f.GetCellValue(SheetAverages, "A2")
	require.NoError(t, err)
	assert.Equal(t, "keto", diet)

	recipe, err := f.GetCellValue(SheetTopRecipes, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Steak", recipe)
}
