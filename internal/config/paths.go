package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for ALL file paths in the application.
type Paths struct {
	BaseDir    string
	DataDir    string
	OutputDir  string
	ResultsDir string

	// Well-known files
	DatasetCSV  string
	ResultsJSON string

	// Report artifacts inside OutputDir
	BarChartPNG    string
	HeatmapPNG     string
	ScatterPNG     string
	AvgMacrosJSON  string
	ReportWorkbook string
}

// NewPaths builds the path set for a configuration, rooted at baseDir.
// Absolute directories in the configuration are kept as-is; relative ones
// are resolved against baseDir.
func NewPaths(cfg *Config, baseDir string) *Paths {
	resolve := func(dir string) string {
		if filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(baseDir, dir)
	}

	dataDir := resolve(cfg.Dataset.Dir)
	outputDir := resolve(cfg.Output.Dir)
	resultsDir := resolve(cfg.Blob.ResultsDir)

	return &Paths{
		BaseDir:    baseDir,
		DataDir:    dataDir,
		OutputDir:  outputDir,
		ResultsDir: resultsDir,

		DatasetCSV:  filepath.Join(dataDir, cfg.Dataset.File),
		ResultsJSON: filepath.Join(resultsDir, "results.json"),

		BarChartPNG:    filepath.Join(outputDir, "avg_macros_per_diet.png"),
		HeatmapPNG:     filepath.Join(outputDir, "macro_heatmap.png"),
		ScatterPNG:     filepath.Join(outputDir, "top_protein_recipes_scatter.png"),
		AvgMacrosJSON:  filepath.Join(outputDir, "avg_macros_per_diet.json"),
		ReportWorkbook: filepath.Join(outputDir, "nutrition_report.xlsx"),
	}
}

// GetPaths returns the application paths relative to the executable location.
// Falls back to the working directory when the executable path cannot be
// resolved (e.g. under go test).
func GetPaths(cfg *Config) (*Paths, error) {
	base, err := resolveBaseDir()
	if err != nil {
		return nil, err
	}
	return NewPaths(cfg, base), nil
}

// EnsureOutputDirs creates the artifact directories if they do not exist
func (p *Paths) EnsureOutputDirs() error {
	for _, dir := range []string{p.OutputDir, p.ResultsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

func resolveBaseDir() (string, error) {
	exe, err := os.Executable()
	if err == nil {
		if resolved, rerr := filepath.EvalSymlinks(exe); rerr == nil {
			return filepath.Dir(resolved), nil
		}
		return filepath.Dir(exe), nil
	}

	wd, werr := os.Getwd()
	if werr != nil {
		return "", fmt.Errorf("failed to resolve base directory: %v", werr)
	}
	return wd, nil
}
