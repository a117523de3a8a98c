/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/friendsincode/sintesi/internal/config"
	"github.com/friendsincode/sintesi/internal/render"
	"github.com/friendsincode/sintesi/internal/scenario"
)

var buildReference = time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)

func testConfig(t *testing.T, strategy string, total int) *config.Config {
	t.Helper()
	return &config.Config{
		IO: config.IOConfig{OutFolder: filepath.Join(t.TempDir(), "out")},
		Generator: config.GeneratorConfig{
			Seed:                 42,
			Strategy:             strategy,
			TotalObjects:         total,
			TestPercentage:       0.2,
			ValidationPercentage: 0.2,
		},
	}
}

func newTestBuilder(t *testing.T, cfg *config.Config) *Builder {
	t.Helper()
	b, err := NewBuilder(cfg, buildReference, zerolog.Nop())
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}
	return b
}

func readTable(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return records
}

func TestBuildWritesOneTablePerSplit(t *testing.T) {
	cfg := testConfig(t, config.StrategyHumanized, 50)
	b := newTestBuilder(t, cfg)

	if err := b.Prepare(); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	results, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	wantRows := map[string]int{"train": 30, "test": 10, "validation": 10}
	if len(results) != 3 {
		t.Fatalf("results len = %d, want 3", len(results))
	}
	for _, res := range results {
		if res.Rows != wantRows[res.Split] {
			t.Fatalf("%s rows = %d, want %d", res.Split, res.Rows, wantRows[res.Split])
		}
		if res.SHA256 == "" {
			t.Fatalf("%s missing checksum", res.Split)
		}

		records := readTable(t, filepath.Join(cfg.IO.OutFolder, res.Split, res.Split+".csv"))
		if len(records) != res.Rows+1 {
			t.Fatalf("%s table has %d records, want %d rows plus header", res.Split, len(records), res.Rows)
		}
		wantHeader := []string{"Input", "Asset", "Start", "End"}
		for i, col := range wantHeader {
			if records[0][i] != col {
				t.Fatalf("%s header = %v, want %v", res.Split, records[0], wantHeader)
			}
		}
	}
}

func TestBuildTemplateStrategyCarriesAction(t *testing.T) {
	cfg := testConfig(t, config.StrategyTemplate, 20)
	b := newTestBuilder(t, cfg)

	if err := b.Prepare(); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if _, err := b.Build(); err != nil {
		t.Fatalf("build: %v", err)
	}

	records := readTable(t, filepath.Join(cfg.IO.OutFolder, "train", "train.csv"))
	if got := strings.Join(records[0], ","); got != "Input,Action,Asset,Start,End" {
		t.Fatalf("header = %q", got)
	}
	for _, row := range records[1:] {
		if row[1] != "prenota" && row[1] != "cancella" && row[1] != "modifica" {
			t.Fatalf("unexpected action %q", row[1])
		}
		if !strings.HasSuffix(row[3], "Z") || !strings.HasSuffix(row[4], "Z") {
			t.Fatalf("template timestamps must be UTC-suffixed: %v", row)
		}
	}
}

func TestBuildIsReproducible(t *testing.T) {
	for _, strategy := range []string{config.StrategyTemplate, config.StrategyHumanized} {
		first := testConfig(t, strategy, 60)
		second := testConfig(t, strategy, 60)

		for _, cfg := range []*config.Config{first, second} {
			b := newTestBuilder(t, cfg)
			if err := b.Prepare(); err != nil {
				t.Fatalf("prepare: %v", err)
			}
			if _, err := b.Build(); err != nil {
				t.Fatalf("build: %v", err)
			}
		}

		for _, split := range []string{"train", "test", "validation"} {
			a, err := os.ReadFile(filepath.Join(first.IO.OutFolder, split, split+".csv"))
			if err != nil {
				t.Fatalf("read first %s: %v", split, err)
			}
			b, err := os.ReadFile(filepath.Join(second.IO.OutFolder, split, split+".csv"))
			if err != nil {
				t.Fatalf("read second %s: %v", split, err)
			}
			if !bytes.Equal(a, b) {
				t.Fatalf("%s/%s tables differ between identical builds", strategy, split)
			}
		}
	}
}

func TestBuildMixModeComposition(t *testing.T) {
	cfg := testConfig(t, config.StrategyHumanized, 10)
	cfg.Generator.TestPercentage = 0
	cfg.Generator.ValidationPercentage = 0
	cfg.Generator.Params.Train.AsDuration = config.DurationMix

	b := newTestBuilder(t, cfg)
	if err := b.Prepare(); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if _, err := b.Build(); err != nil {
		t.Fatalf("build: %v", err)
	}

	records := readTable(t, filepath.Join(cfg.IO.OutFolder, "train", "train.csv"))
	rows := records[1:]
	if len(rows) != 10 {
		t.Fatalf("train rows = %d, want 10", len(rows))
	}

	// First half is duration-phrased ("per ..."), second half range-phrased
	// ("alle ..."), never interleaved.
	for i, row := range rows {
		input := row[0]
		if i < 5 {
			if !strings.Contains(input, " per ") || strings.Contains(input, " alle ") {
				t.Fatalf("row %d should be duration-phrased: %q", i, input)
			}
		} else {
			if !strings.Contains(input, " alle ") || strings.Contains(input, " per ") {
				t.Fatalf("row %d should be range-phrased: %q", i, input)
			}
		}
	}
}

func TestUtteranceReproducibleFromLabel(t *testing.T) {
	cfg := testConfig(t, config.StrategyHumanized, 40)
	cfg.Generator.Params.Train.AsDuration = config.DurationElapsed

	b := newTestBuilder(t, cfg)
	if err := b.Prepare(); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if _, err := b.Build(); err != nil {
		t.Fatalf("build: %v", err)
	}

	// Every utterance must be recoverable from its structured label alone:
	// re-parsing the timestamps and re-rendering with the same duration
	// flag yields the identical text.
	strategy := render.NewHumanizedStrategy(buildReference)
	records := readTable(t, filepath.Join(cfg.IO.OutFolder, "train", "train.csv"))
	for i, row := range records[1:] {
		start, err := time.Parse("2006-01-02T15:04:05", row[2])
		if err != nil {
			t.Fatalf("row %d: parse start: %v", i, err)
		}
		end, err := time.Parse("2006-01-02T15:04:05", row[3])
		if err != nil {
			t.Fatalf("row %d: parse end: %v", i, err)
		}

		ex, err := strategy.Render(scenario.Scenario{
			Action: scenario.ActionBook,
			Asset:  row[1],
			Range:  scenario.TimeRange{Start: start, End: end},
		}, true)
		if err != nil {
			t.Fatalf("row %d: re-render: %v", i, err)
		}
		if ex.Input != row[0] {
			t.Fatalf("row %d: re-rendered %q, table has %q", i, ex.Input, row[0])
		}
	}
}

func TestPrepareResetsNonEmptyRoot(t *testing.T) {
	cfg := testConfig(t, config.StrategyHumanized, 10)
	stale := filepath.Join(cfg.IO.OutFolder, "train", "stale.csv")
	if err := os.MkdirAll(filepath.Dir(stale), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(stale, []byte("old run"), 0o644); err != nil {
		t.Fatalf("write stale file: %v", err)
	}

	b := newTestBuilder(t, cfg)
	if err := b.Prepare(); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if _, err := b.Build(); err != nil {
		t.Fatalf("build: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatal("stale file survived prepare")
	}

	entries, err := os.ReadDir(cfg.IO.OutFolder)
	if err != nil {
		t.Fatalf("read out root: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("out root has %d entries, want 3 split directories", len(entries))
	}
}

func TestPrepareRejectsNonDirectoryRoot(t *testing.T) {
	cfg := testConfig(t, config.StrategyHumanized, 10)
	if err := os.WriteFile(cfg.IO.OutFolder, []byte("not a directory"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	b := newTestBuilder(t, cfg)
	if err := b.Prepare(); !errors.Is(err, ErrNotADirectory) {
		t.Fatalf("expected ErrNotADirectory, got %v", err)
	}
}

func TestNewBuilderRejectsNegativeTrainCount(t *testing.T) {
	cfg := testConfig(t, config.StrategyHumanized, 100)
	cfg.Generator.TestPercentage = 0.9
	cfg.Generator.ValidationPercentage = 0.9

	if _, err := NewBuilder(cfg, buildReference, zerolog.Nop()); !errors.Is(err, ErrInvalidSplit) {
		t.Fatalf("expected ErrInvalidSplit, got %v", err)
	}
}
