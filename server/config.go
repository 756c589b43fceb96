package server

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/jedit-io/jedit/format"
)

// Spec holds the runtime specification for the server.
// Config contains the serializable settings loaded from a file.
type Spec struct {
	Config *Config
	Log    *slog.Logger
}

// Config represents the server configuration file structure.
type Config struct {
	// Addr is the TCP address to listen on.
	Addr string `yaml:"addr"`

	// Format is the default document format for sessions that do not
	// specify one ("json" or "yaml").
	Format string `yaml:"format"`
}

// LoadConfig loads a configuration file in YAML or JSON form.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:   "127.0.0.1:7387",
		Format: format.JSONFormat.String(),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Format != "" {
		if _, err := format.ParseFormat(c.Format); err != nil {
			return err
		}
	}
	return nil
}
