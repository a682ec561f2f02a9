// Command fetchjob runs the remote fetch and summarize job: it connects to
// the blob-store endpoint, ensures the dataset bucket exists, downloads the
// dataset blob, computes per-diet macro means, and writes the summary as a
// JSON file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"nutricli/internal/blobstore"
	"nutricli/internal/config"
	"nutricli/internal/logging"
)

func main() {
	resultsDir := flag.String("results", "", "directory for the results JSON (defaults to config)")
	seed := flag.Bool("seed", false, "upload the local dataset CSV into the bucket before fetching")
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

	resultsPath := paths.ResultsJSON
	if *resultsDir != "" {
		resultsPath = filepath.Join(*resultsDir, "results.json")
	}

	if err := paths.EnsureOutputDirs(); err != nil {
		logger.Error("Failed to create output directories", "error", err)
		os.Exit(1)
	}

	client, err := blobstore.New(cfg.Blob)
	if err != nil {
		logger.Error("Failed to connect to blob store",
			"endpoint", cfg.Blob.Endpoint, "error", err)
		os.Exit(1)
	}

	logger.Info("Starting remote fetch job",
		slog.String("endpoint", cfg.Blob.Endpoint),
		slog.String("bucket", cfg.Blob.Bucket),
		slog.String("object", cfg.Blob.Object))

	ctx := context.Background()

	if *seed {
		if err := seedDataset(ctx, client, cfg, paths.DatasetCSV); err != nil {
			logger.Error("Failed to seed dataset", "error", err)
			os.Exit(1)
		}
	}

	job := blobstore.NewJob(client)
	count, err := job.Run(ctx, cfg.Blob.Bucket, cfg.Blob.Object, resultsPath)
	if err != nil {
		logger.Error("Remote fetch job failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Remote fetch job finished",
		slog.Int("diet_types", count),
		slog.String("results", resultsPath))
	fmt.Println("Data processed and stored successfully.")
}

// seedDataset uploads the local dataset CSV into the bucket so the fetch
// has something to round-trip against a fresh emulator.
func seedDataset(ctx context.Context, client *blobstore.Client, cfg *config.Config, datasetPath string) error {
	data, err := os.ReadFile(datasetPath)
	if err != nil {
		return fmt.Errorf("failed to read dataset %s: %w", datasetPath, err)
	}

	if err := client.EnsureBucket(ctx, cfg.Blob.Bucket); err != nil {
		return err
	}
	return client.Upload(ctx, cfg.Blob.Bucket, cfg.Blob.Object, data, "text/csv")
}
