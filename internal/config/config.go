// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file values
const (
	EnvDatabaseURL   = "DATABASE_URL"
	EnvTable         = "SCREENER_TABLE"
	EnvStopwordsPath = "SCREENER_STOPWORDS"
	EnvPort          = "PORT"
)

// Config represents the configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Storage
	DatabaseURL    string `json:"database_url,omitempty" yaml:"database_url,omitempty"`       // postgres:// or sqlite:// URL
	ReferenceTable string `json:"reference_table,omitempty" yaml:"reference_table,omitempty"` // Pool of reference employees
	CandidateTable string `json:"candidate_table,omitempty" yaml:"candidate_table,omitempty"` // Pool of stored candidates

	// Analysis
	StopwordsPath   string `json:"stopwords_path,omitempty" yaml:"stopwords_path,omitempty"`     // Newline-delimited stopword file
	NormalizeSkills bool   `json:"normalize_skills,omitempty" yaml:"normalize_skills,omitempty"` // Lowercase skills at write time
	Concurrency     int    `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`           // Documents loaded in parallel

	// Server
	Port               int `json:"port,omitempty" yaml:"port,omitempty"`
	RateLimitPerMinute int `json:"rate_limit_per_minute,omitempty" yaml:"rate_limit_per_minute,omitempty"`
	RateLimitBurst     int `json:"rate_limit_burst,omitempty" yaml:"rate_limit_burst,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		DatabaseURL:        "sqlite://screener.db",
		ReferenceTable:     "employees",
		CandidateTable:     "candidates",
		Concurrency:        4,
		Port:               8080,
		RateLimitPerMinute: 120,
		RateLimitBurst:     20,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from the environment. A .env file is expected to
// have been loaded into the environment already.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv(EnvTable); v != "" {
		c.ReferenceTable = v
	}
	if v := os.Getenv(EnvStopwordsPath); v != "" {
		c.StopwordsPath = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer: %w", EnvPort, err)
		}
		c.Port = port
	}
	return nil
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RateLimitPerMinute < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("config error: rate limits must be non-negative")
	}
	if c.ReferenceTable != "" && c.ReferenceTable == c.CandidateTable {
		return fmt.Errorf("config error: 'reference_table' and 'candidate_table' must differ")
	}

	// Validate file paths exist (if specified)
	if c.StopwordsPath != "" {
		if _, err := os.Stat(c.StopwordsPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: stopwords file not found: %s", c.StopwordsPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ReferenceTable == "" {
		result.ReferenceTable = defaults.ReferenceTable
	}
	if result.CandidateTable == "" {
		result.CandidateTable = defaults.CandidateTable
	}
	if result.StopwordsPath == "" {
		result.StopwordsPath = defaults.StopwordsPath
	}

	// Int fields: use default if zero
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimitPerMinute == 0 {
		result.RateLimitPerMinute = defaults.RateLimitPerMinute
	}
	if result.RateLimitBurst == 0 {
		result.RateLimitBurst = defaults.RateLimitBurst
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Load reads the optional config file, applies environment overrides, fills
// defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}
