package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Dataset DatasetConfig `yaml:"dataset" envconfig:"DATASET"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Blob    BlobConfig    `yaml:"blob" envconfig:"BLOB"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// DatasetConfig locates the local input dataset
type DatasetConfig struct {
	Dir  string `yaml:"dir" envconfig:"DIR" default:"data"`
	File string `yaml:"file" envconfig:"FILE" default:"All_Diets.csv"`
}

// OutputConfig locates generated report artifacts
type OutputConfig struct {
	Dir string `yaml:"dir" envconfig:"DIR" default:"output"`
}

// BlobConfig contains the blob-store endpoint and the remote job targets
type BlobConfig struct {
	Endpoint   string `yaml:"endpoint" envconfig:"ENDPOINT" default:"localhost:9000"`
	AccessKey  string `yaml:"access_key" envconfig:"ACCESS_KEY" default:"minioadmin"`
	SecretKey  string `yaml:"secret_key" envconfig:"SECRET_KEY" default:"minioadmin"`
	UseTLS     bool   `yaml:"use_tls" envconfig:"USE_TLS" default:"false"`
	Bucket     string `yaml:"bucket" envconfig:"BUCKET" default:"datasets"`
	Object     string `yaml:"object" envconfig:"OBJECT" default:"All_Diets.csv"`
	ResultsDir string `yaml:"results_dir" envconfig:"RESULTS_DIR" default:"simulated_nosql"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"text"`
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("NUTRI", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence).
// Only fields the environment left at their zero value are filled from the
// file; defaults were already applied by envconfig, so an explicit file
// value only wins when it differs from the default and env is unset.
func mergeConfigs(fileConfig, envConfig Config) Config {
	if fileConfig.Dataset.Dir != "" && os.Getenv("NUTRI_DATASET_DIR") == "" {
		envConfig.Dataset.Dir = fileConfig.Dataset.Dir
	}
	if fileConfig.Dataset.File != "" && os.Getenv("NUTRI_DATASET_FILE") == "" {
		envConfig.Dataset.File = fileConfig.Dataset.File
	}
	if fileConfig.Output.Dir != "" && os.Getenv("NUTRI_OUTPUT_DIR") == "" {
		envConfig.Output.Dir = fileConfig.Output.Dir
	}
	if fileConfig.Blob.Endpoint != "" && os.Getenv("NUTRI_BLOB_ENDPOINT") == "" {
		envConfig.Blob.Endpoint = fileConfig.Blob.Endpoint
	}
	if fileConfig.Blob.AccessKey != "" && os.Getenv("NUTRI_BLOB_ACCESS_KEY") == "" {
		envConfig.Blob.AccessKey = fileConfig.Blob.AccessKey
	}
	if fileConfig.Blob.SecretKey != "" && os.Getenv("NUTRI_BLOB_SECRET_KEY") == "" {
		envConfig.Blob.SecretKey = fileConfig.Blob.SecretKey
	}
	if fileConfig.Blob.Bucket != "" && os.Getenv("NUTRI_BLOB_BUCKET") == "" {
		envConfig.Blob.Bucket = fileConfig.Blob.Bucket
	}
	if fileConfig.Blob.Object != "" && os.Getenv("NUTRI_BLOB_OBJECT") == "" {
		envConfig.Blob.Object = fileConfig.Blob.Object
	}
	if fileConfig.Blob.ResultsDir != "" && os.Getenv("NUTRI_BLOB_RESULTS_DIR") == "" {
		envConfig.Blob.ResultsDir = fileConfig.Blob.ResultsDir
	}
	if fileConfig.Logging.Level != "" && os.Getenv("NUTRI_LOGGING_LEVEL") == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Format != "" && os.Getenv("NUTRI_LOGGING_FORMAT") == "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}

	return envConfig
}

// validate checks configuration values
func (c *Config) validate() error {
	if c.Blob.Endpoint == "" {
		return fmt.Errorf("blob endpoint must not be empty")
	}
	if c.Blob.Bucket == "" {
		return fmt.Errorf("blob bucket must not be empty")
	}
	if c.Blob.Object == "" {
		return fmt.Errorf("blob object must not be empty")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}

	return nil
}

// getConfigFilePath returns the path of the optional YAML config file,
// resolved next to the executable so the tools behave the same regardless
// of the working directory they are launched from.
func getConfigFilePath() string {
	if path := os.Getenv("NUTRI_CONFIG_FILE"); path != "" {
		return path
	}

	exe, err := os.Executable()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(filepath.Dir(exe), "config.yaml")
}
