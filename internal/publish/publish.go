/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package publish copies finished dataset artifacts to a distribution
// location: a filesystem mirror or an S3-compatible bucket.
package publish

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/rs/zerolog"

	"github.com/friendsincode/sintesi/internal/config"
	"github.com/friendsincode/sintesi/internal/dataset"
)

// Store abstracts where published artifacts land.
type Store interface {
	Put(ctx context.Context, key string, data []byte) error
	URL(key string) string
}

// Service publishes split tables under a per-run prefix.
type Service struct {
	store  Store
	logger zerolog.Logger
}

// NewService selects the store from configuration: S3 when a bucket is
// set, otherwise a filesystem mirror. Callers should check
// cfg.PublishEnabled() first.
func NewService(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Service, error) {
	var store Store

	if cfg.Publish.S3Bucket != "" {
		s3cfg := S3Config{
			AccessKeyID:     cfg.Publish.S3AccessKeyID,
			SecretAccessKey: cfg.Publish.S3SecretAccessKey,
			Region:          cfg.Publish.S3Region,
			Bucket:          cfg.Publish.S3Bucket,
			Endpoint:        cfg.Publish.S3Endpoint,
			UsePathStyle:    cfg.Publish.S3UsePathStyle,
		}
		if s3cfg.AccessKeyID == "" || s3cfg.SecretAccessKey == "" {
			logger.Warn().Msg("S3 credentials not configured, publication may fail")
		}

		s3Store, err := NewS3Store(ctx, s3cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("initialize S3 store: %w", err)
		}
		store = s3Store
	} else {
		store = NewFilesystemStore(cfg.Publish.Folder, logger)
	}

	return &Service{
		store:  store,
		logger: logger.With().Str("component", "publish").Logger(),
	}, nil
}

// NewServiceWithStore wires a service around an explicit store.
func NewServiceWithStore(store Store, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With().Str("component", "publish").Logger(),
	}
}

// PublishRun uploads every split table under runs/<runID>/. The local
// artifacts are the source of truth; a publication failure leaves them
// untouched.
func (s *Service) PublishRun(ctx context.Context, runID string, splits []dataset.SplitResult) error {
	for _, split := range splits {
		data, err := os.ReadFile(split.Path)
		if err != nil {
			return fmt.Errorf("read %s table: %w", split.Split, err)
		}

		key := path.Join("runs", runID, split.Split, split.Split+".csv")
		if err := s.store.Put(ctx, key, data); err != nil {
			return fmt.Errorf("publish %s table: %w", split.Split, err)
		}

		s.logger.Info().
			Str("split", split.Split).
			Str("url", s.store.URL(key)).
			Int("rows", split.Rows).
			Msg("artifact published")
	}
	return nil
}
