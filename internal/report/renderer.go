package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"nutricli/internal/analytics"
	"nutricli/internal/dataset"
)

// Artifact file names inside the output directory.
const (
	BarChartFile = "avg_macros_per_diet.png"
	HeatmapFile  = "macro_heatmap.png"
	ScatterFile  = "top_protein_recipes_scatter.png"
)

// macroColors is the fill palette for protein, carbs and fat, in that order.
var macroColors = []drawing.Color{
	{R: 68, G: 119, B: 170, A: 255},  // protein
	{R: 238, G: 153, B: 51, A: 255},  // carbs
	{R: 34, G: 136, B: 51, A: 255},   // fat
}

// dietPalette colors scatter series per diet type.
var dietPalette = []drawing.Color{
	{R: 68, G: 119, B: 170, A: 255},
	{R: 238, G: 102, B: 119, A: 255},
	{R: 34, G: 136, B: 51, A: 255},
	{R: 204, G: 187, B: 68, A: 255},
	{R: 170, G: 51, B: 119, A: 255},
	{R: 102, G: 204, B: 238, A: 255},
	{R: 187, G: 187, B: 187, A: 255},
}

// Renderer produces the chart artifacts for one pipeline run.
type Renderer struct {
	outputDir string
}

// NewRenderer creates a renderer writing into outputDir.
func NewRenderer(outputDir string) *Renderer {
	return &Renderer{outputDir: outputDir}
}

// RenderAll renders the three report charts and returns their paths.
func (r *Renderer) RenderAll(aggs []analytics.DietAggregate, top []dataset.Record) ([]string, error) {
	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	barPath := filepath.Join(r.outputDir, BarChartFile)
	if err := r.renderBarChart(barPath, aggs); err != nil {
		return nil, fmt.Errorf("failed to render bar chart: %w", err)
	}

	heatPath := filepath.Join(r.outputDir, HeatmapFile)
	if err := r.renderHeatmap(heatPath, aggs); err != nil {
		return nil, fmt.Errorf("failed to render heatmap: %w", err)
	}

	scatterPath := filepath.Join(r.outputDir, ScatterFile)
	if err := r.renderScatter(scatterPath, top); err != nil {
		return nil, fmt.Errorf("failed to render scatter: %w", err)
	}

	return []string{barPath, heatPath, scatterPath}, nil
}

// renderBarChart draws grouped bars: three bars (protein, carbs, fat) per
// diet type, diets in aggregate order.
func (r *Renderer) renderBarChart(path string, aggs []analytics.DietAggregate) error {
	if len(aggs) == 0 {
		return fmt.Errorf("no aggregates to chart")
	}

	bars := make([]chart.Value, 0, len(aggs)*3)
	for _, a := range aggs {
		values := []float64{a.AvgProtein, a.AvgCarbs, a.AvgFat}
		for i, v := range values {
			label := ""
			if i == 1 {
				// Label the middle bar of each group with the diet name.
				label = a.Diet
			}
			bars = append(bars, chart.Value{
				Value: v,
				Label: label,
				Style: chart.Style{
					FillColor:   macroColors[i],
					StrokeColor: macroColors[i],
					StrokeWidth: 0,
				},
			})
		}
	}

	width := len(bars)*34 + 120
	if width < 640 {
		width = 640
	}

	graph := chart.BarChart{
		Title:      "Average Macros per Diet Type (protein / carbs / fat)",
		Width:      width,
		Height:     480,
		BarWidth:   24,
		BarSpacing: 10,
		XAxis: chart.Style{
			TextRotationDegrees: 30,
		},
		YAxis: chart.YAxis{
			Name: "Average (g)",
		},
		Bars: bars,
	}

	return r.renderToFile(path, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// renderScatter draws the top protein recipes across cuisines: x is the
// cuisine category (dodged per diet so overlapping diets stay visible),
// y is protein, one series per diet type.
func (r *Renderer) renderScatter(path string, top []dataset.Record) error {
	if len(top) == 0 {
		return fmt.Errorf("no records to chart")
	}

	cuisines := make([]string, 0)
	cuisineIndex := make(map[string]int)
	for _, rec := range top {
		if _, ok := cuisineIndex[rec.Cuisine]; !ok {
			cuisineIndex[rec.Cuisine] = len(cuisines)
			cuisines = append(cuisines, rec.Cuisine)
		}
	}

	diets, groups := analytics.GroupByDiet(top)

	series := make([]chart.Series, 0, len(diets))
	for i, diet := range diets {
		color := dietPalette[i%len(dietPalette)]
		// Dodge each diet slightly around the cuisine position.
		offset := (float64(i) - float64(len(diets)-1)/2) * 0.08

		xs := make([]float64, 0, len(groups[diet]))
		ys := make([]float64, 0, len(groups[diet]))
		for _, rec := range groups[diet] {
			xs = append(xs, float64(cuisineIndex[rec.Cuisine])+offset)
			ys = append(ys, rec.Protein)
		}

		series = append(series, chart.ContinuousSeries{
			Name:    diet,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: 0,
				DotWidth:    5,
				DotColor:    color,
			},
		})
	}

	ticks := make([]chart.Tick, len(cuisines))
	for i, c := range cuisines {
		ticks[i] = chart.Tick{Value: float64(i), Label: c}
	}

	graph := chart.Chart{
		Title:  "Top Protein Recipes Across Cuisines (Top 5 per Diet)",
		Width:  900,
		Height: 520,
		XAxis: chart.XAxis{
			Name:  "Cuisine",
			Ticks: ticks,
			Range: &chart.ContinuousRange{
				Min: -0.5,
				Max: float64(len(cuisines)) - 0.5,
			},
			Style: chart.Style{
				TextRotationDegrees: 30,
			},
		},
		YAxis: chart.YAxis{
			Name: "Protein (g)",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return r.renderToFile(path, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

func (r *Renderer) renderToFile(path string, render func(*os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := render(file); err != nil {
		return err
	}

	slog.Info("Saved chart", slog.String("path", path))
	return nil
}
