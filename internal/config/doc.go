// Package config provides configuration management for the nutrition
// analysis tools.
//
// Configuration is loaded from environment variables with the NUTRI prefix,
// optionally merged with a config.yaml file located next to the executable
// (environment values take precedence). The Paths type is the single source
// of truth for every file the tools read or write.
package config
