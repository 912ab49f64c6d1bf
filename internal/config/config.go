// Package config loads the optional passforge.yml settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no --config flag is given.
const DefaultPath = "passforge.yml"

// Config holds run defaults; command-line flags override every field.
type Config struct {
	Logging         Logging `yaml:"logging,omitempty"`
	CaseInsensitive bool    `yaml:"case_insensitive,omitempty"`
	Detail          bool    `yaml:"detail,omitempty"`
}

// Logging controls the rotating log file.
type Logging struct {
	Level string `yaml:"level,omitempty"`
	Path  string `yaml:"path,omitempty"`
}

// Load reads config from path. A missing file at the default path is
// not an error: the zero Config applies.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks field values that cannot be expressed in the schema
func (c *Config) Validate() error {
	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("invalid logging level %q: %w", c.Logging.Level, err)
		}
	}
	return nil
}
