// Package config loads the YAML configuration shared by the server and
// the CLI. A missing file is not an error: defaults apply, then
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// EngineConfig configures the analysis engine selection.
type EngineConfig struct {
	// DefaultVariant is used when a request does not name an engine:
	// "csg" or "rule".
	DefaultVariant string `yaml:"default_variant"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Config is the full configuration tree.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Engine  EngineConfig  `yaml:"engine"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
		Engine:  EngineConfig{DefaultVariant: "csg"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the configuration from path. An empty path or a missing
// file yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.fillDefaults()
	cfg.applyEnvOverrides()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fillDefaults restores defaults for fields the file left empty.
func (c *Config) fillDefaults() {
	d := Default()
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = d.Server.AllowedOrigins
	}
	if c.Engine.DefaultVariant == "" {
		c.Engine.DefaultVariant = d.Engine.DefaultVariant
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
}

// applyEnvOverrides lets the environment win over the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SVA_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("SVA_ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("SVA_ENGINE"); v != "" {
		c.Engine.DefaultVariant = v
	}
	if v := os.Getenv("SVA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) validate() error {
	switch c.Engine.DefaultVariant {
	case "csg", "rule":
	default:
		return fmt.Errorf("invalid engine.default_variant %q (want csg or rule)", c.Engine.DefaultVariant)
	}
	return nil
}
