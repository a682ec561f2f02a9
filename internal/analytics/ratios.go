package analytics

import (
	"github.com/montanaflynn/stats"

	"nutricli/internal/dataset"
)

// Ratios derives the protein-to-carbs and carbs-to-fat ratio for each
// record. A zero denominator marks the ratio undefined (nil): in this
// dataset a zero macro is a missing-data sentinel, not a true zero, so
// the division is skipped rather than producing an infinity or an error.
func Ratios(records []dataset.Record) []RatioMetrics {
	metrics := make([]RatioMetrics, len(records))
	for i, r := range records {
		if r.Carbs != 0 {
			v := r.Protein / r.Carbs
			metrics[i].ProteinToCarbs = &v
		}
		if r.Fat != 0 {
			v := r.Carbs / r.Fat
			metrics[i].CarbsToFat = &v
		}
	}
	return metrics
}

// DescribeRatios computes describe-style summaries for both ratio columns,
// considering defined values only. A column with no defined values yields
// a zero summary with Count 0.
func DescribeRatios(metrics []RatioMetrics) (proteinToCarbs, carbsToFat RatioSummary) {
	var p2c, c2f []float64
	for _, m := range metrics {
		if m.ProteinToCarbs != nil {
			p2c = append(p2c, *m.ProteinToCarbs)
		}
		if m.CarbsToFat != nil {
			c2f = append(c2f, *m.CarbsToFat)
		}
	}
	return describe(p2c), describe(c2f)
}

func describe(values []float64) RatioSummary {
	if len(values) == 0 {
		return RatioSummary{}
	}

	summary := RatioSummary{Count: len(values)}
	summary.Mean, _ = stats.Mean(values)
	summary.Min, _ = stats.Min(values)
	summary.Max, _ = stats.Max(values)
	summary.P25, _ = stats.Percentile(values, 25)
	summary.Median, _ = stats.Median(values)
	summary.P75, _ = stats.Percentile(values, 75)
	if len(values) > 1 {
		summary.Std, _ = stats.StandardDeviationSample(values)
	}
	return summary
}
