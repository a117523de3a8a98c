/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/friendsincode/sintesi/internal/catalog"
	"github.com/friendsincode/sintesi/internal/dataset"
	"github.com/friendsincode/sintesi/internal/db"
	"github.com/friendsincode/sintesi/internal/publish"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the train/test/validation datasets",
	Long:  "Generate labeled booking utterances per the configuration and write one CSV table per split. The output folder is reset before every build.",
	RunE:  runBuild,
}

var buildReferenceDate string

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&buildReferenceDate, "reference", "", "Reference date (YYYY-MM-DD) anchoring the sampling horizon; defaults to today")
}

func runBuild(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	reference := time.Now()
	if buildReferenceDate != "" {
		parsed, err := time.Parse("2006-01-02", buildReferenceDate)
		if err != nil {
			return fmt.Errorf("parse reference date: %w", err)
		}
		reference = parsed
	}

	started := time.Now()

	builder, err := dataset.NewBuilder(cfg, reference, logger)
	if err != nil {
		return fmt.Errorf("initialize builder: %w", err)
	}

	if err := builder.Prepare(); err != nil {
		return fmt.Errorf("prepare output folder: %w", err)
	}

	results, err := builder.Build()
	if err != nil {
		return fmt.Errorf("build datasets: %w", err)
	}

	logger.Info().
		Int("splits", len(results)).
		Dur("elapsed", time.Since(started)).
		Msg("dataset build complete")

	ctx := context.Background()
	runID := "unrecorded"

	if cfg.CatalogEnabled() {
		conn, err := db.Connect(cfg)
		if err != nil {
			return fmt.Errorf("connect catalog database: %w", err)
		}
		defer db.Close(conn)

		svc, err := catalog.NewService(conn, logger)
		if err != nil {
			return fmt.Errorf("initialize catalog: %w", err)
		}

		runID, err = svc.Record(ctx, catalog.RunRecord{
			Strategy:             builder.Strategy().Name(),
			Seed:                 cfg.Generator.Seed,
			ReferenceDate:        builder.Reference(),
			TotalObjects:         cfg.Generator.TotalObjects,
			TestPercentage:       cfg.Generator.TestPercentage,
			ValidationPercentage: cfg.Generator.ValidationPercentage,
			OutFolder:            cfg.IO.OutFolder,
			Duration:             time.Since(started),
			Splits:               results,
		})
		if err != nil {
			return fmt.Errorf("record build run: %w", err)
		}
	}

	if cfg.PublishEnabled() {
		svc, err := publish.NewService(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("initialize publisher: %w", err)
		}
		if err := svc.PublishRun(ctx, runID, results); err != nil {
			return fmt.Errorf("publish artifacts: %w", err)
		}
	}

	for _, res := range results {
		fmt.Printf("DONE! %s data saved into %s (%d rows)\n", res.Split, res.Path, res.Rows)
	}
	return nil
}
