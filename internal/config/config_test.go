package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Point the config file somewhere that does not exist so host state
	// cannot leak into the test.
	t.Setenv("NUTRI_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Dataset.Dir)
	assert.Equal(t, "All_Diets.csv", cfg.Dataset.File)
	assert.Equal(t, "output", cfg.Output.Dir)
	assert.Equal(t, "localhost:9000", cfg.Blob.Endpoint)
	assert.Equal(t, "datasets", cfg.Blob.Bucket)
	assert.Equal(t, "All_Diets.csv", cfg.Blob.Object)
	assert.Equal(t, "simulated_nosql", cfg.Blob.ResultsDir)
	assert.False(t, cfg.Blob.UseTLS)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NUTRI_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("NUTRI_BLOB_ENDPOINT", "storage.example.com:9000")
	t.Setenv("NUTRI_BLOB_BUCKET", "nutrition")
	t.Setenv("NUTRI_OUTPUT_DIR", "/tmp/reports")
	t.Setenv("NUTRI_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "storage.example.com:9000", cfg.Blob.Endpoint)
	assert.Equal(t, "nutrition", cfg.Blob.Bucket)
	assert.Equal(t, "/tmp/reports", cfg.Output.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte(`
dataset:
  dir: nutrition_data
blob:
  endpoint: blobstore:9000
  bucket: from-file
`)
	require.NoError(t, os.WriteFile(configPath, content, 0644))

	t.Setenv("NUTRI_CONFIG_FILE", configPath)
	// Env wins over file for the bucket.
	t.Setenv("NUTRI_BLOB_BUCKET", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "nutrition_data", cfg.Dataset.Dir)
	assert.Equal(t, "blobstore:9000", cfg.Blob.Endpoint)
	assert.Equal(t, "from-env", cfg.Blob.Bucket)
	// Untouched sections keep defaults.
	assert.Equal(t, "output", cfg.Output.Dir)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		envKey  string
		envVal  string
		wantErr string
	}{
		{
			name:    "invalid logging level",
			envKey:  "NUTRI_LOGGING_LEVEL",
			envVal:  "verbose",
			wantErr: "invalid logging level",
		},
		{
			name:    "invalid logging format",
			envKey:  "NUTRI_LOGGING_FORMAT",
			envVal:  "xml",
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NUTRI_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
			t.Setenv(tt.envKey, tt.envVal)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
