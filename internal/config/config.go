// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// GitHub access
	GitHubAPIURL string `json:"github_api_url,omitempty"` // Override for the GitHub REST endpoint
	GitHubToken  string `json:"github_token,omitempty"`   // Optional token for higher rate limits

	// Behavior
	TimeoutSeconds int  `json:"timeout_seconds,omitempty"` // Per-request timeout for the GitHub API
	Port           int  `json:"port,omitempty"`            // HTTP server port
	Verbose        bool `json:"verbose,omitempty"`         // Print detailed analysis output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. Missing or
// malformed variables leave the zero value in place.
func FromEnv() Config {
	cfg := Config{
		GitHubAPIURL: os.Getenv("CAREER_GITHUB_API_URL"),
		GitHubToken:  os.Getenv("CAREER_GITHUB_TOKEN"),
	}
	if raw := os.Getenv("CAREER_HTTP_TIMEOUT"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil {
			cfg.TimeoutSeconds = seconds
		}
	}
	if raw := os.Getenv("PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			cfg.Port = port
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-value fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.GitHubAPIURL == "" {
		result.GitHubAPIURL = defaults.GitHubAPIURL
	}
	if result.GitHubToken == "" {
		result.GitHubToken = defaults.GitHubToken
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
