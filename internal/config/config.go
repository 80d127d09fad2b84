// Package config provides policy configuration loading and validation for orgaudit.
package config

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/joshsymonds/orgaudit/pkg/pathutil"
)

// Defaults applied before a configuration file is decoded.
const (
	DefaultMinRatio  = 1.20
	DefaultMaxRatio  = 1.50
	DefaultMaxDepth  = 4
	DefaultHopLimit  = 1000
	DefaultDelimiter = ","
)

// Config represents the complete configuration for an audit run.
type Config struct {
	Source SourceConfig `yaml:"source,omitempty" toml:"source,omitempty"`
	Input  InputConfig  `yaml:"input" toml:"input"`
	Policy Policy       `yaml:"policy" toml:"policy"`
}

// Policy holds the thresholds both auditors enforce.
type Policy struct {
	Salary   SalaryBand `yaml:"salary" toml:"salary"`
	MaxDepth int        `yaml:"max_depth" toml:"max_depth"`
	HopLimit int        `yaml:"hop_limit" toml:"hop_limit"`
}

// SalaryBand is the multiplier band a manager's salary must fall within,
// relative to the average salary of their direct reports.
type SalaryBand struct {
	MinRatio float64 `yaml:"min_ratio" toml:"min_ratio"`
	MaxRatio float64 `yaml:"max_ratio" toml:"max_ratio"`
}

// InputConfig describes the delimited roster format.
type InputConfig struct {
	Delimiter  string `yaml:"delimiter" toml:"delimiter"`
	SkipHeader bool   `yaml:"skip_header" toml:"skip_header"`
}

// SourceConfig contains settings for remote roster sources.
type SourceConfig struct {
	S3 S3Config `yaml:"s3,omitempty" toml:"s3,omitempty"`
}

// S3Config configures the S3 client used for s3:// locations.
type S3Config struct {
	Region   string `yaml:"region,omitempty" toml:"region,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty" toml:"endpoint,omitempty"` // Empty means the AWS default endpoint
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Policy: Policy{
			Salary: SalaryBand{
				MinRatio: DefaultMinRatio,
				MaxRatio: DefaultMaxRatio,
			},
			MaxDepth: DefaultMaxDepth,
			HopLimit: DefaultHopLimit,
		},
		Input: InputConfig{
			Delimiter:  DefaultDelimiter,
			SkipHeader: true,
		},
	}
}

// LoadConfig reads and parses a YAML or TOML configuration file. Values not
// present in the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	validPath, err := pathutil.ValidateConfigPath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}

	data, err := os.ReadFile(validPath) //nolint:gosec // Path is validated above
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	switch strings.ToLower(filepath.Ext(validPath)) {
	case ".toml":
		if _, err := toml.Decode(string(data), config); err != nil {
			return nil, fmt.Errorf("parsing config TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate ensures the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Policy.Validate(); err != nil {
		return err
	}

	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("input.delimiter must be a single character, got %q", c.Input.Delimiter)
	}
	if c.Input.Delimiter == "\n" || c.Input.Delimiter == "\r" {
		return fmt.Errorf("input.delimiter cannot be a line break")
	}

	return nil
}

// Validate ensures the policy thresholds are usable.
func (p Policy) Validate() error {
	minRatio, maxRatio := p.Salary.MinRatio, p.Salary.MaxRatio
	if math.IsNaN(minRatio) || math.IsInf(minRatio, 0) || minRatio <= 0 {
		return fmt.Errorf("policy.salary.min_ratio must be a positive number, got %v", minRatio)
	}
	if math.IsNaN(maxRatio) || math.IsInf(maxRatio, 0) || maxRatio <= 0 {
		return fmt.Errorf("policy.salary.max_ratio must be a positive number, got %v", maxRatio)
	}
	if maxRatio < minRatio {
		return fmt.Errorf("policy.salary.max_ratio (%v) must not be below min_ratio (%v)", maxRatio, minRatio)
	}

	if p.MaxDepth < 0 {
		return fmt.Errorf("policy.max_depth must not be negative, got %d", p.MaxDepth)
	}
	if p.HopLimit <= p.MaxDepth+1 {
		return fmt.Errorf("policy.hop_limit (%d) must exceed max_depth + 1 (%d)", p.HopLimit, p.MaxDepth+1)
	}

	return nil
}

// Delim returns the input delimiter as a rune.
func (c *Config) Delim() rune {
	r, _ := utf8.DecodeRuneInString(c.Input.Delimiter)
	return r
}

// Marshal renders the configuration as YAML, the way LoadConfig reads it.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encoding config YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config YAML: %w", err)
	}
	return buf.Bytes(), nil
}
