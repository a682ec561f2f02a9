package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Diet_type,Recipe_name,Cuisine_type,Protein(g),Carbs(g),Fat(g)
vegan,Lentil Bowl,indian,18.5,42,9
paleo,Grilled Chicken,american,35,2,12.5
`

func TestRecords(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	cols, err := Resolve(table)
	require.NoError(t, err)

	records, err := Records(table, cols)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Record{
		Diet:    "vegan",
		Recipe:  "Lentil Bowl",
		Cuisine: "indian",
		Protein: 18.5,
		Carbs:   42,
		Fat:     9,
	}, records[0])
	assert.Equal(t, "paleo", records[1].Diet)
	assert.InDelta(t, 12.5, records[1].Fat, 1e-9)
}

func TestRecordsAfterCleaning(t *testing.T) {
	input := "Diet_type,Recipe_name,Cuisine_type,Protein(g),Carbs(g),Fat(g)\n" +
		"vegan,A,indian,10,20,5\n" +
		"vegan,B,indian,,20,5\n"
	table, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	_, err = CleanNumeric(table)
	require.NoError(t, err)

	cols, err := Resolve(table)
	require.NoError(t, err)

	records, err := Records(table, cols)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, records[1].Protein, 1e-9)
}

func TestRecordsRejectsUnparseableMacro(t *testing.T) {
	input := "Diet_type,Recipe_name,Cuisine_type,Protein(g),Carbs(g),Fat(g)\n" +
		"vegan,A,indian,abc,20,5\n"
	table, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	cols, err := Resolve(table)
	require.NoError(t, err)

	_, err = Records(table, cols)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "protein")
}
