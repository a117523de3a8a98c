/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/friendsincode/sintesi/internal/config"
	"github.com/friendsincode/sintesi/internal/render"
	"github.com/friendsincode/sintesi/internal/scenario"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print sample utterances without writing any files",
	Long:  "Generate a handful of labeled examples to stdout, useful for eyeballing phrasing before a full build",
	RunE:  runPreview,
}

var (
	previewCount      int
	previewSeed       int64
	previewStrategy   string
	previewAsDuration bool
)

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntVar(&previewCount, "count", 10, "Number of examples to print")
	previewCmd.Flags().Int64Var(&previewSeed, "seed", 42, "Random seed")
	previewCmd.Flags().StringVar(&previewStrategy, "strategy", config.StrategyHumanized, "Rendering strategy (template or humanized)")
	previewCmd.Flags().BoolVar(&previewAsDuration, "as-duration", false, "Phrase time ranges as durations")
}

func runPreview(cmd *cobra.Command, args []string) error {
	reference := scenario.Midnight(time.Now())

	var (
		profile  scenario.Profile
		strategy render.Strategy
	)
	switch previewStrategy {
	case config.StrategyTemplate:
		profile = scenario.ProfileTemplate
		strategy = render.NewTemplateStrategy()
	case config.StrategyHumanized:
		profile = scenario.ProfileHumanized
		strategy = render.NewHumanizedStrategy(reference)
	default:
		return fmt.Errorf("%w: unknown strategy %q", config.ErrInvalidConfig, previewStrategy)
	}

	sampler := scenario.NewSampler(rand.New(rand.NewSource(previewSeed)), profile, reference)

	for i := 0; i < previewCount; i++ {
		ex, err := strategy.Render(sampler.Sample(), previewAsDuration)
		if err != nil {
			return fmt.Errorf("render example: %w", err)
		}

		fmt.Printf("%q\n", ex.Input)
		if ex.Action != "" {
			fmt.Printf("  action=%s asset=%q start=%s end=%s\n", ex.Action, ex.Asset, ex.Start, ex.End)
		} else {
			fmt.Printf("  asset=%q start=%s end=%s\n", ex.Asset, ex.Start, ex.End)
		}
	}
	return nil
}
