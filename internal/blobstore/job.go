package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"nutricli/internal/analytics"
	"nutricli/internal/dataset"
	"nutricli/internal/exporter"
)

// ObjectStore is the slice of the blob client the job needs; it lets tests
// run the job against an in-process store.
type ObjectStore interface {
	EnsureBucket(ctx context.Context, bucket string) error
	Download(ctx context.Context, bucket, object string) ([]byte, error)
}

// Job downloads the dataset blob, computes the per-diet macro means, and
// writes them as a JSON array of records.
type Job struct {
	store  ObjectStore
	writer *exporter.JSONWriter
}

// NewJob creates a fetch-and-summarize job over a store.
func NewJob(store ObjectStore) *Job {
	return &Job{
		store:  store,
		writer: exporter.NewJSONWriter(),
	}
}

// Run executes the job: ensure the bucket, download the object, parse and
// clean the table, aggregate per diet, and write resultsPath. Any failure
// propagates; there are no retries.
func (j *Job) Run(ctx context.Context, bucket, object, resultsPath string) (int, error) {
	if err := j.store.EnsureBucket(ctx, bucket); err != nil {
		return 0, err
	}

	data, err := j.store.Download(ctx, bucket, object)
	if err != nil {
		return 0, err
	}

	table, err := dataset.Parse(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("failed to parse blob %s/%s: %w", bucket, object, err)
	}

	if _, err := dataset.CleanNumeric(table); err != nil {
		return 0, fmt.Errorf("failed to clean blob data: %w", err)
	}

	cols, err := dataset.Resolve(table)
	if err != nil {
		return 0, err
	}

	records, err := dataset.Records(table, cols)
	if err != nil {
		return 0, err
	}

	aggs, err := analytics.AggregateByDiet(records)
	if err != nil {
		return 0, err
	}

	rows := exporter.RowsFromAggregates(aggs)
	if err := j.writer.Write(resultsPath, rows); err != nil {
		return 0, err
	}

	slog.Info("Remote summary written",
		slog.String("path", resultsPath),
		slog.Int("diet_types", len(rows)),
		slog.Int("records", len(records)))
	return len(rows), nil
}
