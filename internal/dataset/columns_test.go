package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableWithHeaders(t *testing.T, headers ...string) *Table {
	t.Helper()
	table, err := Parse(strings.NewReader(strings.Join(headers, ",") + "\n"))
	require.NoError(t, err)
	return table
}

func TestResolveSpellingVariants(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
	}{
		{
			name:    "canonical",
			headers: []string{"Diet_type", "Recipe_name", "Cuisine_type", "Protein(g)", "Carbs(g)", "Fat(g)"},
		},
		{
			name:    "spaced",
			headers: []string{"Diet Type", "Recipe Name", "Cuisine Type", "Protein", "Carbs", "Fat"},
		},
		{
			name:    "lowercase",
			headers: []string{"diet_type", "recipe_name", "cuisine_type", "protein", "carbs", "fat"},
		},
		{
			name:    "short and long forms mixed",
			headers: []string{"diet", "Recipe", "Cuisine", "Protein", "Carbohydrates(g)", "fat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := tableWithHeaders(t, tt.headers...)

			cols, err := Resolve(table)
			require.NoError(t, err)

			// Every accepted spelling resolves to the same semantic
			// identity regardless of which variant the file uses.
			assert.Equal(t, tt.headers[0], cols.Name(table, FieldDiet))
			assert.Equal(t, tt.headers[1], cols.Name(table, FieldRecipe))
			assert.Equal(t, tt.headers[2], cols.Name(table, FieldCuisine))
			assert.Equal(t, tt.headers[3], cols.Name(table, FieldProtein))
			assert.Equal(t, tt.headers[4], cols.Name(table, FieldCarbs))
			assert.Equal(t, tt.headers[5], cols.Name(table, FieldFat))
		})
	}
}

func TestResolveColumnOrderIndependent(t *testing.T) {
	table := tableWithHeaders(t, "Fat(g)", "Diet_type", "Carbs(g)", "Recipe_name", "Protein(g)", "Cuisine_type")

	cols, err := Resolve(table)
	require.NoError(t, err)

	assert.Equal(t, 1, cols[FieldDiet])
	assert.Equal(t, 0, cols[FieldFat])
	assert.Equal(t, 4, cols[FieldProtein])
}

func TestResolveMissingColumns(t *testing.T) {
	table := tableWithHeaders(t, "Diet_type", "Recipe_name", "Protein(g)")

	_, err := Resolve(table)
	require.Error(t, err)

	var unresolved *UnresolvedColumnsError
	require.ErrorAs(t, err, &unresolved)

	assert.ElementsMatch(t, []Field{FieldCuisine, FieldCarbs, FieldFat}, unresolved.Missing)
	assert.Equal(t, []string{"Diet_type", "Recipe_name", "Protein(g)"}, unresolved.Detected)

	// The message carries the detected headers for diagnosis.
	assert.Contains(t, err.Error(), "Diet_type")
	assert.Contains(t, err.Error(), "cuisine type")
}

func TestResolveFirstSpellingWins(t *testing.T) {
	// Both the canonical and the bare spelling are present; the first
	// accepted spelling in the list wins.
	table := tableWithHeaders(t, "Protein", "Protein(g)", "Diet_type", "Recipe_name", "Cuisine_type", "Carbs(g)", "Fat(g)")

	cols, err := Resolve(table)
	require.NoError(t, err)
	assert.Equal(t, "Protein(g)", cols.Name(table, FieldProtein))
}
