// Package report renders the visual artifacts of the analysis: a grouped
// bar chart of average macros per diet type, a heatmap of the same
// aggregate matrix, and a categorical scatter of the top protein recipes
// across cuisines. All artifacts are PNG files in the output directory,
// which is created if absent.
package report
