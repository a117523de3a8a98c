/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package config loads and validates the build configuration: a YAML file
// for the dataset definition plus environment variables for deployment
// knobs and credentials.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Database backend selection for the run catalog.
type DatabaseBackend string

const (
	DatabasePostgres DatabaseBackend = "postgres"
	DatabaseMySQL    DatabaseBackend = "mysql"
	DatabaseSQLite   DatabaseBackend = "sqlite"
)

// Strategy names accepted by generator.strategy.
const (
	StrategyTemplate  = "template"
	StrategyHumanized = "humanized"
)

// DurationMode selects how a split phrases the end of a time range.
type DurationMode int

const (
	// DurationRange phrases the absolute end clock time ("alle 17:00").
	DurationRange DurationMode = iota
	// DurationElapsed phrases the elapsed length ("per 2 ore").
	DurationElapsed
	// DurationMix generates the first half of a split with elapsed
	// phrasing and the rest with range phrasing, concatenated in that
	// order.
	DurationMix
)

// UnmarshalYAML accepts true, false or "mix", matching the configuration
// schema of the original data pipeline.
func (m *DurationMode) UnmarshalYAML(value *yaml.Node) error {
	var b bool
	if err := value.Decode(&b); err == nil {
		if b {
			*m = DurationElapsed
		} else {
			*m = DurationRange
		}
		return nil
	}

	var s string
	if err := value.Decode(&s); err == nil && s == "mix" {
		*m = DurationMix
		return nil
	}
	return fmt.Errorf("%w: as_duration must be true, false or \"mix\" (got %q)", ErrInvalidConfig, value.Value)
}

func (m DurationMode) String() string {
	switch m {
	case DurationElapsed:
		return "duration"
	case DurationMix:
		return "mix"
	default:
		return "range"
	}
}

// IOConfig names the output location.
type IOConfig struct {
	OutFolder string `yaml:"out_folder"`
}

// SplitConfig carries the per-split generation settings.
type SplitConfig struct {
	AsDuration DurationMode `yaml:"as_duration"`
}

// SplitParams groups the per-split settings.
type SplitParams struct {
	Train      SplitConfig `yaml:"train"`
	Test       SplitConfig `yaml:"test"`
	Validation SplitConfig `yaml:"validation"`
}

// GeneratorConfig drives sampling and rendering.
type GeneratorConfig struct {
	Seed                 int64       `yaml:"seed"`
	Strategy             string      `yaml:"strategy"`
	TotalObjects         int         `yaml:"total_objects"`
	TestPercentage       float64     `yaml:"test_percentage"`
	ValidationPercentage float64     `yaml:"validation_percentage"`
	Params               SplitParams `yaml:"params"`
}

// CatalogConfig enables the optional run catalog. An empty DSN disables it.
type CatalogConfig struct {
	Backend DatabaseBackend `yaml:"backend"`
	DSN     string          `yaml:"dsn"`
}

// PublishConfig enables optional artifact publication. An S3 bucket takes
// precedence; otherwise Folder selects a filesystem mirror; both empty
// disables publication.
type PublishConfig struct {
	Folder string `yaml:"folder"`

	S3Bucket          string `yaml:"s3_bucket"`
	S3Region          string `yaml:"s3_region"`
	S3Endpoint        string `yaml:"s3_endpoint"`
	S3AccessKeyID     string `yaml:"-"`
	S3SecretAccessKey string `yaml:"-"`
	S3UsePathStyle    bool   `yaml:"s3_use_path_style"`
}

// Config is the validated process configuration.
type Config struct {
	Environment string          `yaml:"-"`
	IO          IOConfig        `yaml:"io"`
	Generator   GeneratorConfig `yaml:"generator"`
	Catalog     CatalogConfig   `yaml:"catalog"`
	Publish     PublishConfig   `yaml:"publish"`
}

// Load reads the YAML configuration file, applies environment overrides,
// fills defaults and validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv layers environment variables over the file. Credentials are
// env-only and never read from the file.
func (c *Config) applyEnv() {
	c.Environment = getEnvAny([]string{"SINTESI_ENV"}, "development")

	if dsn := getEnvAny([]string{"SINTESI_CATALOG_DSN"}, ""); dsn != "" {
		c.Catalog.DSN = dsn
	}
	if backend := getEnvAny([]string{"SINTESI_CATALOG_BACKEND"}, ""); backend != "" {
		c.Catalog.Backend = DatabaseBackend(backend)
	}

	c.Publish.S3AccessKeyID = getEnvAny([]string{"SINTESI_S3_ACCESS_KEY_ID", "AWS_ACCESS_KEY_ID"}, "")
	c.Publish.S3SecretAccessKey = getEnvAny([]string{"SINTESI_S3_SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY"}, "")
	if region := getEnvAny([]string{"SINTESI_S3_REGION", "AWS_REGION"}, ""); region != "" {
		c.Publish.S3Region = region
	}
	if endpoint := getEnvAny([]string{"SINTESI_S3_ENDPOINT"}, ""); endpoint != "" {
		c.Publish.S3Endpoint = endpoint
	}
	if getEnvBoolAny([]string{"SINTESI_S3_USE_PATH_STYLE"}, false) {
		c.Publish.S3UsePathStyle = true
	}
}

func (c *Config) applyDefaults() {
	if c.Generator.Seed == 0 {
		c.Generator.Seed = 42
	}
	if c.Generator.Strategy == "" {
		c.Generator.Strategy = StrategyHumanized
	}
	if c.Catalog.Backend == "" {
		c.Catalog.Backend = DatabaseSQLite
	}
	if c.Publish.S3Region == "" {
		c.Publish.S3Region = "us-east-1"
	}
}

func (c *Config) validate() error {
	if c.IO.OutFolder == "" {
		return fmt.Errorf("%w: io.out_folder must be provided", ErrInvalidConfig)
	}

	if c.Generator.Strategy != StrategyTemplate && c.Generator.Strategy != StrategyHumanized {
		return fmt.Errorf("%w: unknown generator strategy %q", ErrInvalidConfig, c.Generator.Strategy)
	}

	if c.Generator.TotalObjects <= 0 {
		return fmt.Errorf("%w: generator.total_objects must be positive (got %d)", ErrInvalidConfig, c.Generator.TotalObjects)
	}

	te, va := c.Generator.TestPercentage, c.Generator.ValidationPercentage
	if te < 0 || te > 1 || va < 0 || va > 1 || te+va > 1 {
		return fmt.Errorf("%w: test_percentage %.3f and validation_percentage %.3f must each lie in [0,1] and sum to at most 1", ErrInvalidConfig, te, va)
	}

	switch c.Catalog.Backend {
	case DatabasePostgres, DatabaseMySQL, DatabaseSQLite:
	default:
		return fmt.Errorf("%w: unsupported catalog backend %q", ErrInvalidConfig, c.Catalog.Backend)
	}

	return nil
}

// CatalogEnabled reports whether build runs should be recorded.
func (c *Config) CatalogEnabled() bool {
	return c.Catalog.DSN != ""
}

// PublishEnabled reports whether artifacts should be published.
func (c *Config) PublishEnabled() bool {
	return c.Publish.S3Bucket != "" || c.Publish.Folder != ""
}

// getEnvAny returns the first non-empty environment variable value from keys, or def if none set.
func getEnvAny(keys []string, def string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

// getEnvBoolAny returns the first set boolean environment variable value from keys, or def.
func getEnvBoolAny(keys []string, def bool) bool {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			v = strings.ToLower(strings.TrimSpace(v))
			if v == "true" || v == "1" || v == "yes" {
				return true
			}
			if v == "false" || v == "0" || v == "no" {
				return false
			}
		}
	}
	return def
}
