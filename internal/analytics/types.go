package analytics

// DietAggregate holds the mean macro quantities for one diet type.
type DietAggregate struct {
	Diet       string
	AvgProtein float64
	AvgCarbs   float64
	AvgFat     float64
	Recipes    int
}

// CuisineCount is the number of recipes for one (diet, cuisine) pair.
type CuisineCount struct {
	Diet    string
	Cuisine string
	Count   int
}

// RatioMetrics carries the derived per-record ratios. A nil pointer marks
// an undefined ratio: a zero denominator is treated as a missing-data
// sentinel, never as infinity and never as an error.
type RatioMetrics struct {
	ProteinToCarbs *float64
	CarbsToFat     *float64
}

// RatioSummary is a describe-style statistical summary over the defined
// values of one ratio column.
type RatioSummary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	P25    float64
	Median float64
	P75    float64
	Max    float64
}
