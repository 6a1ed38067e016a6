// Package yaml loads unveil configuration from YAML files and the
// environment.
package yaml

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fwojciec/unveil"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding configuration values.
const (
	EnvDataDir           = "UNVEIL_DATA_DIR"
	EnvDatabase          = "UNVEIL_DB"
	EnvRetries           = "UNVEIL_DOWNLOAD_RETRIES"
	EnvRetryDelaySeconds = "UNVEIL_DOWNLOAD_RETRY_DELAY_SECONDS"
)

// LoadConfig builds the configuration from the built-in defaults, the YAML
// file at path, and the environment, in that order of precedence.
// An empty path skips the file.
func LoadConfig(path string) (*unveil.Config, error) {
	cfg := unveil.DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := Decode(data, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Decode merges YAML data into cfg. Keys absent from data keep their
// current values; a datasets list replaces the configured one.
func Decode(data []byte, cfg *unveil.Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return unveil.Errorf(unveil.EINVALID, "failed to parse YAML: %s", err)
	}
	return nil
}

// Encode renders cfg as YAML.
func Encode(cfg *unveil.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

func applyEnv(cfg *unveil.Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDataDir); ok && v != "" {
		cfg.DataDir = v
	}
	if v, ok := lookup(EnvDatabase); ok && v != "" {
		cfg.Database = v
	}
	if v, ok := lookup(EnvRetries); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return unveil.Errorf(unveil.EINVALID, "%s must be an integer: %q", EnvRetries, v)
		}
		cfg.Fetch.Retries = n
	}
	if v, ok := lookup(EnvRetryDelaySeconds); ok && v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return unveil.Errorf(unveil.EINVALID, "%s must be a number: %q", EnvRetryDelaySeconds, v)
		}
		cfg.Fetch.RetryDelay = time.Duration(n * float64(time.Second))
	}
	return nil
}
