package blobstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore serves blobs from memory.
type fakeStore struct {
	objects       map[string][]byte
	ensureCalls   int
	downloadCalls int
}

func (f *fakeStore) EnsureBucket(ctx context.Context, bucket string) error {
	f.ensureCalls++
	// Already-exists is benign, mirroring the real client.
	return nil
}

func (f *fakeStore) Download(ctx context.Context, bucket, object string) ([]byte, error) {
	f.downloadCalls++
	data, ok := f.objects[bucket+"/"+object]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

const remoteCSV = `Diet_type,Recipe_name,Cuisine_type,Protein(g),Carbs(g),Fat(g)
vegan,Lentil Bowl,indian,10,40,5
vegan,Chickpea Curry,indian,20,35,9
paleo,Grilled Chicken,american,5,2,12
`

func TestJobRun(t *testing.T) {
	store := &fakeStore{
		objects: map[string][]byte{"datasets/All_Diets.csv": []byte(remoteCSV)},
	}
	resultsPath := filepath.Join(t.TempDir(), "simulated_nosql", "results.json")

	job := NewJob(store)
	count, err := job.Run(context.Background(), "datasets", "All_Diets.csv", resultsPath)
	require.NoError(t, err)

	// One JSON row per distinct diet type in the downloaded CSV.
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, store.ensureCalls)
	assert.Equal(t, 1, store.downloadCalls)

	data, err := os.ReadFile(resultsPath)
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 2)

	// Sorted by mean protein descending: vegan (15) before paleo (5).
	assert.Equal(t, "vegan", rows[0]["Diet_type"])
	assert.InDelta(t, 15.0, rows[0]["Protein(g)"].(float64), 1e-9)
	assert.Equal(t, "paleo", rows[1]["Diet_type"])
	assert.InDelta(t, 5.0, rows[1]["Protein(g)"].(float64), 1e-9)
}

func TestJobRunMissingObject(t *testing.T) {
	store := &fakeStore{objects: map[string][]byte{}}
	job := NewJob(store)

	_, err := job.Run(context.Background(), "datasets", "All_Diets.csv",
		filepath.Join(t.TempDir(), "results.json"))
	require.Error(t, err)
}

func TestJobRunUnresolvableColumns(t *testing.T) {
	store := &fakeStore{
		objects: map[string][]byte{
			"datasets/bad.csv": []byte("foo,bar\n1,2\n"),
		},
	}
	job := NewJob(store)

	_, err := job.Run(context.Background(), "datasets", "bad.csv",
		filepath.Join(t.TempDir(), "results.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "detected columns")
}

func TestJobRunImputesMissingMacros(t *testing.T) {
	csv := "Diet_type,Recipe_name,Cuisine_type,Protein(g),Carbs(g),Fat(g)\n" +
		"vegan,A,indian,10,40,5\n" +
		"vegan,B,indian,,40,5\n"
	store := &fakeStore{
		objects: map[string][]byte{"datasets/All_Diets.csv": []byte(csv)},
	}
	resultsPath := filepath.Join(t.TempDir(), "results.json")

	job := NewJob(store)
	count, err := job.Run(context.Background(), "datasets", "All_Diets.csv", resultsPath)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	data, err := os.ReadFile(resultsPath)
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 1)
	assert.InDelta(t, 10.0, rows[0]["Protein(g)"].(float64), 1e-9)
}
