package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"PriceTrend/internal/reporter"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all application configuration.
type Config struct {
	Input struct {
		Delimiter  string `yaml:"delimiter"`
		SkipHeader *bool  `yaml:"skip_header"`
	} `yaml:"input"`
	Report struct {
		Precision *int `yaml:"precision"`
	} `yaml:"report"`
	Log Log `yaml:"log"`
}

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PRICETREND_DELIMITER"); v != "" {
		cfg.Input.Delimiter = v
	}
	if v := os.Getenv("PRICETREND_PRECISION"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PRICETREND_PRECISION: %w", err)
		}
		cfg.Report.Precision = &p
	}
	if v := os.Getenv("PRICETREND_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PRICETREND_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}

	// Defaults
	if cfg.Input.Delimiter == "" {
		cfg.Input.Delimiter = ","
	}
	if cfg.Input.SkipHeader == nil {
		skip := true
		cfg.Input.SkipHeader = &skip
	}
	if cfg.Report.Precision == nil {
		p := reporter.DefaultPrecision
		cfg.Report.Precision = &p
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("%w: input.delimiter must be a single character, got %q", ErrInvalid, c.Input.Delimiter)
	}
	if c.Input.Delimiter == "\n" || c.Input.Delimiter == "\r" {
		return fmt.Errorf("%w: input.delimiter cannot be a line break", ErrInvalid)
	}
	if c.Report.Precision != nil && *c.Report.Precision < -1 {
		return fmt.Errorf("%w: report.precision must be -1 or greater", ErrInvalid)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format must be text or json", ErrInvalid)
	}
	return nil
}

// SkipHeader reports whether the first input line is discarded.
func (c *Config) SkipHeader() bool {
	return c.Input.SkipHeader == nil || *c.Input.SkipHeader
}

// Precision returns the significant digits used when printing numbers.
func (c *Config) Precision() int {
	if c.Report.Precision == nil {
		return reporter.DefaultPrecision
	}
	return *c.Report.Precision
}
