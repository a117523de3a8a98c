/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const validConfig = `
io:
  out_folder: ./out
generator:
  seed: 42
  strategy: humanized
  total_objects: 2000
  test_percentage: 0.15
  validation_percentage: 0.15
  params:
    train:
      as_duration: mix
    test:
      as_duration: true
    validation:
      as_duration: false
`

func TestLoadParsesDurationModes(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Generator.Params.Train.AsDuration != DurationMix {
		t.Fatalf("train mode = %v, want mix", cfg.Generator.Params.Train.AsDuration)
	}
	if cfg.Generator.Params.Test.AsDuration != DurationElapsed {
		t.Fatalf("test mode = %v, want duration", cfg.Generator.Params.Test.AsDuration)
	}
	if cfg.Generator.Params.Validation.AsDuration != DurationRange {
		t.Fatalf("validation mode = %v, want range", cfg.Generator.Params.Validation.AsDuration)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
io:
  out_folder: ./out
generator:
  total_objects: 100
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Generator.Seed != 42 {
		t.Fatalf("seed = %d, want 42", cfg.Generator.Seed)
	}
	if cfg.Generator.Strategy != StrategyHumanized {
		t.Fatalf("strategy = %q, want humanized", cfg.Generator.Strategy)
	}
	if cfg.Catalog.Backend != DatabaseSQLite {
		t.Fatalf("catalog backend = %q, want sqlite", cfg.Catalog.Backend)
	}
	if cfg.CatalogEnabled() || cfg.PublishEnabled() {
		t.Fatal("catalog and publish must default to disabled")
	}
}

func TestLoadRejectsBadDurationMode(t *testing.T) {
	_, err := Load(writeConfig(t, `
io:
  out_folder: ./out
generator:
  total_objects: 100
  params:
    train:
      as_duration: sometimes
`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadRejectsInvalidPercentages(t *testing.T) {
	cases := []string{
		"  test_percentage: 0.7\n  validation_percentage: 0.5\n",
		"  test_percentage: -0.1\n",
		"  test_percentage: 1.2\n",
	}
	for _, extra := range cases {
		body := "io:\n  out_folder: ./out\ngenerator:\n  total_objects: 100\n" + extra
		if _, err := Load(writeConfig(t, body)); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("config %q: expected ErrInvalidConfig, got %v", extra, err)
		}
	}
}

func TestLoadRejectsUnknownStrategy(t *testing.T) {
	_, err := Load(writeConfig(t, `
io:
  out_folder: ./out
generator:
  total_objects: 100
  strategy: markov
`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadRequiresOutFolder(t *testing.T) {
	_, err := Load(writeConfig(t, `
generator:
  total_objects: 100
`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadEnvOverridesCredentials(t *testing.T) {
	t.Setenv("SINTESI_CATALOG_DSN", "catalog.db")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIAEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !cfg.CatalogEnabled() || cfg.Catalog.DSN != "catalog.db" {
		t.Fatalf("catalog dsn = %q", cfg.Catalog.DSN)
	}
	if cfg.Publish.S3AccessKeyID != "AKIAEXAMPLE" || cfg.Publish.S3SecretAccessKey != "secret" {
		t.Fatal("S3 credentials not picked up from environment")
	}
}
