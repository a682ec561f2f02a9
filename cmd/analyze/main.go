// Command analyze runs the ingestion and reporting pipeline: it loads the
// nutrition dataset, cleans missing numeric values, computes the aggregate
// tables and ratio metrics, renders the report charts, and exports the
// aggregates as JSON and XLSX.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"nutricli/internal/analytics"
	"nutricli/internal/config"
	"nutricli/internal/dataset"
	"nutricli/internal/exporter"
	"nutricli/internal/logging"
	"nutricli/internal/report"
)

func main() {
	dataPath := flag.String("data", "", "path to the dataset CSV (defaults to <data dir>/All_Diets.csv)")
	outputDir := flag.String("out", "", "output directory for charts and exports (defaults to config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logging)

	runID := uuid.NewString()
	logger := slog.Default().With(slog.String("run_id", runID))

	paths, err := config.GetPaths(cfg)
	if err != nil {
		logger.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *dataPath == "" {
		*dataPath = paths.DatasetCSV
	}
	if *outputDir == "" {
		*outputDir = paths.OutputDir
	}

	if err := paths.EnsureOutputDirs(); err != nil {
		logger.Error("Failed to create output directories", "error", err)
		os.Exit(1)
	}

	if err := run(logger, *dataPath, *outputDir); err != nil {
		var unresolved *dataset.UnresolvedColumnsError
		if errors.As(err, &unresolved) {
			fmt.Println("\nERROR: Could not detect one or more required columns.")
			fmt.Println("Detected columns:", unresolved.Detected)
		}
		logger.Error("Analysis failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, dataPath, outputDir string) error {
	fmt.Println("=== Cloud-Native Nutritional Insights: Dataset Analysis ===")

	table, err := dataset.Load(dataPath)
	if err != nil {
		return err
	}
	fmt.Printf("\nLoaded dataset: %s\n", dataPath)
	fmt.Printf("Rows: %d, Columns: %d\n", table.NumRows(), table.NumColumns())

	cleanReport, err := dataset.CleanNumeric(table)
	if err != nil {
		return err
	}
	fmt.Printf("\nMissing numeric values before: %d\n", cleanReport.MissingBefore)
	fmt.Printf("Missing numeric values after : %d\n", cleanReport.MissingAfter)

	cols, err := dataset.Resolve(table)
	if err != nil {
		return err
	}

	fmt.Println("\nDetected columns:")
	fmt.Printf(" Diet type  : %s\n", cols.Name(table, dataset.FieldDiet))
	fmt.Printf(" Recipe name: %s\n", cols.Name(table, dataset.FieldRecipe))
	fmt.Printf(" Cuisine    : %s\n", cols.Name(table, dataset.FieldCuisine))
	fmt.Printf(" Protein    : %s\n", cols.Name(table, dataset.FieldProtein))
	fmt.Printf(" Carbs      : %s\n", cols.Name(table, dataset.FieldCarbs))
	fmt.Printf(" Fat        : %s\n", cols.Name(table, dataset.FieldFat))

	records, err := dataset.Records(table, cols)
	if err != nil {
		return err
	}

	aggs, err := analytics.AggregateByDiet(records)
	if err != nil {
		return err
	}
	printAggregates(aggs)

	top := analytics.TopProteinRecipes(records, 5)
	printTopRecipes(top)

	if best, ok := analytics.HighestProteinDiet(aggs); ok {
		fmt.Println("\n=== Diet Type with Highest Average Protein ===")
		fmt.Printf("%s (avg protein = %.2f)\n", best.Diet, best.AvgProtein)
	}

	cuisines := analytics.TopCuisines(records, 3)
	printTopCuisines(cuisines)

	ratios := analytics.Ratios(records)
	p2c, c2f := analytics.DescribeRatios(ratios)
	printRatioSummaries(p2c, c2f)

	renderer := report.NewRenderer(outputDir)
	chartPaths, err := renderer.RenderAll(aggs, top)
	if err != nil {
		return err
	}
	fmt.Println()
	for _, p := range chartPaths {
		fmt.Printf("Saved chart: %s\n", p)
	}

	jsonPath := filepath.Join(outputDir, "avg_macros_per_diet.json")
	if err := exporter.NewJSONWriter().Write(jsonPath, exporter.RowsFromAggregates(aggs)); err != nil {
		return err
	}

	workbookPath := filepath.Join(outputDir, "nutrition_report.xlsx")
	if err := exporter.NewWorkbookWriter().Write(workbookPath, aggs, top, cuisines); err != nil {
		return err
	}

	logger.Info("Analysis complete",
		slog.Int("records", len(records)),
		slog.Int("diet_types", len(aggs)),
		slog.String("output_dir", outputDir))

	fmt.Println("\n=== DONE ===")
	fmt.Println("Outputs saved in:", outputDir)
	return nil
}

func printAggregates(aggs []analytics.DietAggregate) {
	fmt.Println("\n=== Average Macros per Diet Type ===")
	fmt.Printf("%-20s %12s %12s %12s\n", "Diet Type", "Protein(g)", "Carbs(g)", "Fat(g)")
	for _, a := range aggs {
		fmt.Printf("%-20s %12.2f %12.2f %12.2f\n", a.Diet, a.AvgProtein, a.AvgCarbs, a.AvgFat)
	}
}

func printTopRecipes(top []dataset.Record) {
	fmt.Println("\n=== Top 5 Protein Recipes per Diet Type ===")
	diets, groups := analytics.GroupByDiet(top)
	for _, diet := range diets {
		fmt.Printf("\n--- %s ---\n", diet)
		for _, r := range groups[diet] {
			fmt.Printf("%-40s %-15s %8.2f %8.2f %8.2f\n", r.Recipe, r.Cuisine, r.Protein, r.Carbs, r.Fat)
		}
	}
}

func printTopCuisines(cuisines []analytics.CuisineCount) {
	fmt.Println("\n=== Most Common Cuisines per Diet Type ===")

	perDiet := make(map[string][]analytics.CuisineCount)
	for _, cc := range cuisines {
		perDiet[cc.Diet] = append(perDiet[cc.Diet], cc)
	}
	diets := make([]string, 0, len(perDiet))
	for diet := range perDiet {
		diets = append(diets, diet)
	}
	sort.Strings(diets)

	for _, diet := range diets {
		fmt.Printf("\n--- %s ---\n", diet)
		for _, cc := range perDiet[diet] {
			fmt.Printf("%-20s %6d\n", cc.Cuisine, cc.Count)
		}
	}
}

func printRatioSummaries(p2c, c2f analytics.RatioSummary) {
	fmt.Println("\n=== New Metrics Created ===")
	fmt.Printf("%-10s %22s %22s\n", "", "Protein_to_Carbs_ratio", "Carbs_to_Fat_ratio")
	rows := []struct {
		label string
		p2c   float64
		c2f   float64
	}{
		{"count", float64(p2c.Count), float64(c2f.Count)},
		{"mean", p2c.Mean, c2f.Mean},
		{"std", p2c.Std, c2f.Std},
		{"min", p2c.Min, c2f.Min},
		{"25%", p2c.P25, c2f.P25},
		{"50%", p2c.Median, c2f.Median},
		{"75%", p2c.P75, c2f.P75},
		{"max", p2c.Max, c2f.Max},
	}
	for _, row := range rows {
		fmt.Printf("%-10s %22.2f %22.2f\n", row.label, row.p2c, row.c2f)
	}
}
