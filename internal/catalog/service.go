/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package catalog records dataset build provenance so any artifact on disk
// can be traced back to the seed and configuration that produced it.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/friendsincode/sintesi/internal/dataset"
	"github.com/friendsincode/sintesi/internal/models"
)

// RunRecord carries everything the catalog stores about one build.
type RunRecord struct {
	Strategy             string
	Seed                 int64
	ReferenceDate        time.Time
	TotalObjects         int
	TestPercentage       float64
	ValidationPercentage float64
	OutFolder            string
	Duration             time.Duration
	Splits               []dataset.SplitResult
}

// Service persists and lists build runs.
type Service struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewService creates a catalog service and migrates its schema.
func NewService(db *gorm.DB, logger zerolog.Logger) (*Service, error) {
	if err := db.AutoMigrate(&models.BuildRun{}, &models.SplitArtifact{}); err != nil {
		return nil, fmt.Errorf("migrate catalog schema: %w", err)
	}
	return &Service{
		db:     db,
		logger: logger.With().Str("component", "catalog").Logger(),
	}, nil
}

// Record stores one completed build run with its artifacts. Returns the
// new run ID.
func (s *Service) Record(ctx context.Context, rec RunRecord) (string, error) {
	run := models.BuildRun{
		ID:                   uuid.NewString(),
		Strategy:             rec.Strategy,
		Seed:                 rec.Seed,
		ReferenceDate:        rec.ReferenceDate,
		TotalObjects:         rec.TotalObjects,
		TestPercentage:       rec.TestPercentage,
		ValidationPercentage: rec.ValidationPercentage,
		OutFolder:            rec.OutFolder,
		DurationMS:           rec.Duration.Milliseconds(),
	}
	for _, split := range rec.Splits {
		run.Artifacts = append(run.Artifacts, models.SplitArtifact{
			ID:     uuid.NewString(),
			RunID:  run.ID,
			Split:  split.Split,
			Rows:   split.Rows,
			Path:   split.Path,
			SHA256: split.SHA256,
		})
	}

	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return "", fmt.Errorf("record build run: %w", err)
	}

	s.logger.Info().
		Str("run_id", run.ID).
		Str("strategy", run.Strategy).
		Int("artifacts", len(run.Artifacts)).
		Msg("build run recorded")

	return run.ID, nil
}

// List returns the most recent build runs with their artifacts, newest
// first.
func (s *Service) List(ctx context.Context, limit int) ([]models.BuildRun, error) {
	if limit <= 0 {
		limit = 20
	}

	var runs []models.BuildRun
	if err := s.db.WithContext(ctx).
		Preload("Artifacts").
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("list build runs: %w", err)
	}
	return runs, nil
}
