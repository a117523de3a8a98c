/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/friendsincode/sintesi/internal/config"
	"github.com/friendsincode/sintesi/internal/render"
	"github.com/friendsincode/sintesi/internal/scenario"
)

// ErrNotADirectory is returned when the output root exists but is not a
// directory.
var ErrNotADirectory = errors.New("dataset: output path is not a directory")

// Split generation order is fixed: all splits draw from one seeded random
// stream, so reordering would change every sample after the first split
// even with the same seed.
var splitOrder = [...]string{"train", "test", "validation"}

// SplitResult describes one written table.
type SplitResult struct {
	Split  string
	Rows   int
	Path   string
	SHA256 string
}

// Builder generates all splits of one dataset. It exclusively owns the
// output directory between Prepare and Build.
type Builder struct {
	cfg       *config.Config
	counts    Counts
	strategy  render.Strategy
	sampler   *scenario.Sampler
	reference time.Time
	outRoot   string
	logger    zerolog.Logger
}

// NewBuilder wires a builder from validated configuration. reference
// anchors the sampling horizon and relative date phrasing; pass a pinned
// date for reproducible pipelines, or time.Now() for "from today".
func NewBuilder(cfg *config.Config, reference time.Time, logger zerolog.Logger) (*Builder, error) {
	counts, err := Plan(cfg.Generator.TotalObjects, cfg.Generator.TestPercentage, cfg.Generator.ValidationPercentage)
	if err != nil {
		return nil, err
	}

	reference = scenario.Midnight(reference)

	var (
		profile  scenario.Profile
		strategy render.Strategy
	)
	switch cfg.Generator.Strategy {
	case config.StrategyTemplate:
		profile = scenario.ProfileTemplate
		strategy = render.NewTemplateStrategy()
	case config.StrategyHumanized:
		profile = scenario.ProfileHumanized
		strategy = render.NewHumanizedStrategy(reference)
	default:
		return nil, fmt.Errorf("%w: unknown generator strategy %q", config.ErrInvalidConfig, cfg.Generator.Strategy)
	}

	rng := rand.New(rand.NewSource(cfg.Generator.Seed))

	b := &Builder{
		cfg:       cfg,
		counts:    counts,
		strategy:  strategy,
		sampler:   scenario.NewSampler(rng, profile, reference),
		reference: reference,
		outRoot:   cfg.IO.OutFolder,
		logger:    logger.With().Str("component", "dataset-builder").Logger(),
	}

	b.logger.Info().
		Str("strategy", strategy.Name()).
		Int64("seed", cfg.Generator.Seed).
		Time("reference", reference).
		Int("train", counts.Train).
		Int("test", counts.Test).
		Int("validation", counts.Validation).
		Str("out_folder", b.outRoot).
		Msg("builder configured")

	return b, nil
}

// Counts returns the planned per-split counts.
func (b *Builder) Counts() Counts {
	return b.counts
}

// Reference returns the midnight-truncated reference date.
func (b *Builder) Reference() time.Time {
	return b.reference
}

// Strategy returns the active rendering strategy.
func (b *Builder) Strategy() render.Strategy {
	return b.strategy
}

// Prepare resets the output root to an empty, known-good layout: the root
// is created if absent, destructively cleared if non-empty, and populated
// with one subdirectory per split. Re-running a build against the same
// path always yields a clean, fully overwritten output.
func (b *Builder) Prepare() error {
	info, err := os.Stat(b.outRoot)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("%w: %s", ErrNotADirectory, b.outRoot)
	case err == nil:
		entries, err := os.ReadDir(b.outRoot)
		if err != nil {
			return fmt.Errorf("read output root: %w", err)
		}
		if len(entries) > 0 {
			b.logger.Warn().Str("path", b.outRoot).Msg("output root not empty, clearing")
			if err := os.RemoveAll(b.outRoot); err != nil {
				return fmt.Errorf("clear output root: %w", err)
			}
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("stat output root: %w", err)
	}

	if err := os.MkdirAll(b.outRoot, 0o755); err != nil {
		return fmt.Errorf("create output root: %w", err)
	}
	for _, split := range splitOrder {
		if err := os.Mkdir(filepath.Join(b.outRoot, split), 0o755); err != nil {
			return fmt.Errorf("create %s directory: %w", split, err)
		}
	}
	return nil
}

// Build generates every split in fixed order and writes one table per
// split. Prepare must have been called first.
func (b *Builder) Build() ([]SplitResult, error) {
	plan := []struct {
		split string
		count int
		mode  config.DurationMode
	}{
		{"train", b.counts.Train, b.cfg.Generator.Params.Train.AsDuration},
		{"test", b.counts.Test, b.cfg.Generator.Params.Test.AsDuration},
		{"validation", b.counts.Validation, b.cfg.Generator.Params.Validation.AsDuration},
	}

	results := make([]SplitResult, 0, len(plan))
	for _, p := range plan {
		examples, err := b.generate(p.count, p.mode)
		if err != nil {
			return nil, fmt.Errorf("generate %s split: %w", p.split, err)
		}

		path := filepath.Join(b.outRoot, p.split, p.split+".csv")
		sum, err := writeTable(path, b.strategy.Columns(), examples)
		if err != nil {
			return nil, fmt.Errorf("write %s table: %w", p.split, err)
		}

		b.logger.Info().
			Str("split", p.split).
			Int("rows", len(examples)).
			Str("mode", p.mode.String()).
			Str("path", path).
			Msg("split written")

		results = append(results, SplitResult{Split: p.split, Rows: len(examples), Path: path, SHA256: sum})
	}
	return results, nil
}

// generate produces count examples under the given duration mode. Mix mode
// concatenates a duration-phrased first half with a range-phrased second
// half; halves are not interleaved or shuffled.
func (b *Builder) generate(count int, mode config.DurationMode) ([]render.Example, error) {
	switch mode {
	case config.DurationMix:
		half := count / 2
		first, err := b.renderBatch(half, true)
		if err != nil {
			return nil, err
		}
		rest, err := b.renderBatch(count-half, false)
		if err != nil {
			return nil, err
		}
		return append(first, rest...), nil
	case config.DurationElapsed:
		return b.renderBatch(count, true)
	default:
		return b.renderBatch(count, false)
	}
}

func (b *Builder) renderBatch(count int, asDuration bool) ([]render.Example, error) {
	examples := make([]render.Example, 0, count)
	for i := 0; i < count; i++ {
		ex, err := b.strategy.Render(b.sampler.Sample(), asDuration)
		if err != nil {
			return nil, err
		}
		examples = append(examples, ex)
	}
	return examples, nil
}
