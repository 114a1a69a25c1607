// Package config provides configuration loading for the context registry.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the complete registry configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	Validation ValidationConfig `yaml:"validation"`
}

// ServerConfig configures the HTTP API server
type ServerConfig struct {
	// Addr is the listen address (default ":8080")
	Addr string `yaml:"addr"`
}

// StoreConfig configures the persistence layer
type StoreConfig struct {
	// Path is the SQLite database file (default "registry.db")
	Path string `yaml:"path"`
}

// ValidationConfig configures the validation policy
type ValidationConfig struct {
	// Strict rejects unknown top-level fields instead of ignoring them
	Strict bool `yaml:"strict"`
	// AllowedHooks enables the hook allowlist when non-empty
	AllowedHooks []string `yaml:"allowed_hooks"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Store:  StoreConfig{Path: "registry.db"},
		Validation: ValidationConfig{
			Strict:       false,
			AllowedHooks: nil, // opaque hook names, no allowlist
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	return nil
}
