package report

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"nutricli/internal/analytics"
)

const (
	heatCellWidth  = 110
	heatCellHeight = 44
	heatLeftMargin = 150
	heatTopMargin  = 56
	heatRightPad   = 20
	heatBottomPad  = 20
)

var heatmapColumns = []string{"Protein (g)", "Carbs (g)", "Fat (g)"}

// viridisAnchors approximates the viridis color ramp.
var viridisAnchors = []color.RGBA{
	{68, 1, 84, 255},
	{59, 82, 139, 255},
	{33, 145, 140, 255},
	{94, 201, 98, 255},
	{253, 231, 37, 255},
}

// renderHeatmap draws the diets x macros aggregate matrix as a heatmap with
// annotated cell values, normalized over the whole matrix.
func (r *Renderer) renderHeatmap(path string, aggs []analytics.DietAggregate) error {
	if len(aggs) == 0 {
		return fmt.Errorf("no aggregates to chart")
	}

	matrix := make([][]float64, len(aggs))
	minVal, maxVal := aggs[0].AvgProtein, aggs[0].AvgProtein
	for i, a := range aggs {
		matrix[i] = []float64{a.AvgProtein, a.AvgCarbs, a.AvgFat}
		for _, v := range matrix[i] {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}

	width := heatLeftMargin + len(heatmapColumns)*heatCellWidth + heatRightPad
	height := heatTopMargin + len(aggs)*heatCellHeight + heatBottomPad

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	drawLabel(img, heatLeftMargin, 20, "Heatmap: Average Macros by Diet Type", color.Black)

	for j, name := range heatmapColumns {
		x := heatLeftMargin + j*heatCellWidth + 12
		drawLabel(img, x, heatTopMargin-10, name, color.Black)
	}

	for i, a := range aggs {
		y := heatTopMargin + i*heatCellHeight
		drawLabel(img, 8, y+heatCellHeight/2+4, a.Diet, color.Black)

		for j, v := range matrix[i] {
			x := heatLeftMargin + j*heatCellWidth
			norm := normalize(v, minVal, maxVal)
			cell := image.Rect(x, y, x+heatCellWidth-2, y+heatCellHeight-2)
			draw.Draw(img, cell, &image.Uniform{viridisColor(norm)}, image.Point{}, draw.Src)

			// Dark cells get light annotations and vice versa.
			textColor := color.Color(color.White)
			if norm > 0.6 {
				textColor = color.Black
			}
			drawLabel(img, x+10, y+heatCellHeight/2+4, fmt.Sprintf("%.2f", v), textColor)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return r.renderToFile(path, func(f *os.File) error {
		return png.Encode(f, img)
	})
}

func normalize(v, min, max float64) float64 {
	if max == min {
		return 0.5
	}
	return (v - min) / (max - min)
}

// viridisColor interpolates the viridis ramp at t in [0, 1].
func viridisColor(t float64) color.RGBA {
	if t <= 0 {
		return viridisAnchors[0]
	}
	if t >= 1 {
		return viridisAnchors[len(viridisAnchors)-1]
	}

	scaled := t * float64(len(viridisAnchors)-1)
	idx := int(scaled)
	frac := scaled - float64(idx)

	a := viridisAnchors[idx]
	b := viridisAnchors[idx+1]
	return color.RGBA{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func drawLabel(img *image.RGBA, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
