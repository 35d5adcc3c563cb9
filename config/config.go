package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives the marketsim binary. Values come from environment
// variables first and an optional YAML file second, so a checked-in file
// can be overridden per shell.
type Config struct {
	FixturePath string       `yaml:"fixture_path"`
	LogLevel    string       `yaml:"log_level"`
	Report      ReportConfig `yaml:"report"`
}

// ReportConfig shapes the rendered report.
type ReportConfig struct {
	SortBy    string `yaml:"sort_by"`
	TopQuotes int    `yaml:"top_quotes"`
}

// Load builds a Config from env defaults, then overlays the YAML file at
// path when one is given.
func Load(path string) (*Config, error) {
	cfg := &Config{
		FixturePath: getEnv("MARKET_FIXTURE", ""),
		LogLevel:    getEnv("MARKET_LOG_LEVEL", "info"),
		Report: ReportConfig{
			SortBy:    getEnv("MARKET_SORT_BY", "price"),
			TopQuotes: 5,
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects option values the report cannot act on.
func (c *Config) Validate() error {
	switch c.Report.SortBy {
	case "price", "time", "rating":
	default:
		return fmt.Errorf("config: unknown sort_by %q", c.Report.SortBy)
	}
	if c.Report.TopQuotes <= 0 {
		return fmt.Errorf("config: top_quotes must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
