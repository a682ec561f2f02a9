// Package analytics computes the descriptive statistics of the nutrition
// dataset: per-diet macro averages, top protein recipes, most common
// cuisines, and the derived ratio metrics with their summaries.
//
// All functions are pure over immutable record slices; results are
// recomputed each run and never persisted except through the exporter and
// report packages.
package analytics
