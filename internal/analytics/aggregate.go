package analytics

import (
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"

	"nutricli/internal/dataset"
)

// AggregateByDiet groups records by diet type and computes the mean of each
// macro per group. The result is sorted by mean protein descending; ties
// break on diet name ascending so the order is deterministic.
func AggregateByDiet(records []dataset.Record) ([]DietAggregate, error) {
	groups := make(map[string][]dataset.Record)
	for _, r := range records {
		groups[r.Diet] = append(groups[r.Diet], r)
	}

	aggs := make([]DietAggregate, 0, len(groups))
	for diet, group := range groups {
		protein := make([]float64, len(group))
		carbs := make([]float64, len(group))
		fat := make([]float64, len(group))
		for i, r := range group {
			protein[i] = r.Protein
			carbs[i] = r.Carbs
			fat[i] = r.Fat
		}

		avgProtein, err := stats.Mean(protein)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate diet %q: %w", diet, err)
		}
		avgCarbs, err := stats.Mean(carbs)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate diet %q: %w", diet, err)
		}
		avgFat, err := stats.Mean(fat)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate diet %q: %w", diet, err)
		}

		aggs = append(aggs, DietAggregate{
			Diet:       diet,
			AvgProtein: avgProtein,
			AvgCarbs:   avgCarbs,
			AvgFat:     avgFat,
			Recipes:    len(group),
		})
	}

	sort.Slice(aggs, func(i, j int) bool {
		if aggs[i].AvgProtein != aggs[j].AvgProtein {
			return aggs[i].AvgProtein > aggs[j].AvgProtein
		}
		return aggs[i].Diet < aggs[j].Diet
	})

	return aggs, nil
}

// HighestProteinDiet returns the diet with the highest mean protein.
// The aggregate slice is already sorted, so this is its first element.
func HighestProteinDiet(aggs []DietAggregate) (DietAggregate, bool) {
	if len(aggs) == 0 {
		return DietAggregate{}, false
	}
	return aggs[0], true
}

// TopProteinRecipes sorts all records by protein descending (stable, so
// equal-protein records keep their input order) and keeps the first n per
// diet type. The returned slice preserves the global sorted order, with
// diet groups interleaved.
func TopProteinRecipes(records []dataset.Record, n int) []dataset.Record {
	sorted := make([]dataset.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Protein > sorted[j].Protein
	})

	taken := make(map[string]int)
	top := make([]dataset.Record, 0, len(sorted))
	for _, r := range sorted {
		if taken[r.Diet] >= n {
			continue
		}
		taken[r.Diet]++
		top = append(top, r)
	}
	return top
}

// GroupByDiet splits records into per-diet slices preserving input order,
// with diets listed alphabetically. Used for printing per-diet blocks.
func GroupByDiet(records []dataset.Record) ([]string, map[string][]dataset.Record) {
	groups := make(map[string][]dataset.Record)
	for _, r := range records {
		groups[r.Diet] = append(groups[r.Diet], r)
	}

	diets := make([]string, 0, len(groups))
	for diet := range groups {
		diets = append(diets, diet)
	}
	sort.Strings(diets)
	return diets, groups
}

// TopCuisines counts records per (diet, cuisine) pair, sorts the counts
// descending, and keeps the first n cuisines per diet. Ties break on diet
// then cuisine name for determinism.
func TopCuisines(records []dataset.Record, n int) []CuisineCount {
	type key struct{ diet, cuisine string }
	counts := make(map[key]int)
	for _, r := range records {
		counts[key{r.Diet, r.Cuisine}]++
	}

	all := make([]CuisineCount, 0, len(counts))
	for k, c := range counts {
		all = append(all, CuisineCount{Diet: k.diet, Cuisine: k.cuisine, Count: c})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		if all[i].Diet != all[j].Diet {
			return all[i].Diet < all[j].Diet
		}
		return all[i].Cuisine < all[j].Cuisine
	})

	taken := make(map[string]int)
	top := make([]CuisineCount, 0, len(all))
	for _, cc := range all {
		if taken[cc.Diet] >= n {
			continue
		}
		taken[cc.Diet]++
		top = append(top, cc)
	}
	return top
}
