// Package config handles linkup configuration loading and validation.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration structure for linkup.
type Config struct {
	// Source identifies the remote worksheet backing the dashboard.
	Source SourceConfig `yaml:"source" mapstructure:"source"`

	// Owner is the dashboard user's identity, used to attribute
	// messages as sent or received.
	Owner OwnerConfig `yaml:"owner" mapstructure:"owner"`

	// Cache settings for the fetched snapshot.
	Cache CacheConfig `yaml:"cache" mapstructure:"cache"`

	// Server settings for the JSON API.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// SourceConfig identifies the spreadsheet, worksheet, and read-only
// credential for the record source.
type SourceConfig struct {
	// SpreadsheetID is the Google Sheets document identifier.
	SpreadsheetID string `yaml:"spreadsheet_id" mapstructure:"spreadsheet_id"`

	// Worksheet is the named table within the document.
	Worksheet string `yaml:"worksheet" mapstructure:"worksheet"`

	// CredentialsFile is a path to a service-account JSON key.
	CredentialsFile string `yaml:"credentials_file" mapstructure:"credentials_file"`

	// CredentialsJSON is the service-account key inline, for
	// environments without a key file on disk.
	CredentialsJSON string `yaml:"credentials_json" mapstructure:"credentials_json"`
}

// OwnerConfig is the owner identity pair. It is static configuration,
// never derived from the data.
type OwnerConfig struct {
	// Name is the owner's display name as it appears in the export.
	Name string `yaml:"name" mapstructure:"name"`

	// ProfileURL is the owner's profile identifier.
	ProfileURL string `yaml:"profile_url" mapstructure:"profile_url"`
}

// CacheConfig bounds how often the remote source is consulted.
type CacheConfig struct {
	// TTL is the snapshot validity window.
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ServerConfig contains JSON API server settings.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" mapstructure:"level"`

	// Format is the output format (json, console).
	Format string `yaml:"format" mapstructure:"format"`

	// File is an optional log file path.
	File string `yaml:"file" mapstructure:"file"`

	// EnableCaller adds caller information to logs.
	EnableCaller bool `yaml:"enable_caller" mapstructure:"enable_caller"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			TTL: 60 * time.Second,
		},
		Server: ServerConfig{
			Addr: ":8787",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks settings every command relies on.
func (c *Config) Validate() error {
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative")
	}
	switch c.Logging.Level {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	return nil
}

// ValidateSource checks the settings required by commands that consult
// the record source.
func (c *Config) ValidateSource() error {
	if strings.TrimSpace(c.Source.SpreadsheetID) == "" {
		return fmt.Errorf("source.spreadsheet_id required")
	}
	if strings.TrimSpace(c.Source.Worksheet) == "" {
		return fmt.Errorf("source.worksheet required")
	}
	file := strings.TrimSpace(c.Source.CredentialsFile)
	inline := strings.TrimSpace(c.Source.CredentialsJSON)
	if file == "" && inline == "" {
		return fmt.Errorf("source credentials required (credentials_file or credentials_json)")
	}
	if file != "" && inline != "" {
		return fmt.Errorf("source.credentials_file and source.credentials_json are mutually exclusive")
	}
	if strings.TrimSpace(c.Owner.Name) == "" {
		return fmt.Errorf("owner.name required")
	}
	return nil
}
