package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Market struct {
		AdjustedClose bool              `yaml:"adjusted_close"`
		SymbolMap     map[string]string `yaml:"symbol_map"`
	} `yaml:"market"`
	Chart struct {
		OutputDir string `yaml:"output_dir"`
	} `yaml:"chart"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // console or json
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STOCKWATCH_ADJUSTED_CLOSE"); v != "" {
		cfg.Market.AdjustedClose = v == "true" || v == "1"
	}
	if v := os.Getenv("STOCKWATCH_OUTPUT_DIR"); v != "" {
		cfg.Chart.OutputDir = v
	}
	if v := os.Getenv("STOCKWATCH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Defaults
	if cfg.Chart.OutputDir == "" {
		cfg.Chart.OutputDir = "charts"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	if c.Chart.OutputDir == "" {
		return fmt.Errorf("chart.output_dir is required")
	}
	return nil
}
