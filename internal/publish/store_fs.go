/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package publish

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FilesystemStore implements Store on a local directory tree.
type FilesystemStore struct {
	rootDir string
	logger  zerolog.Logger
}

// NewFilesystemStore creates a filesystem-backed store rooted at rootDir.
func NewFilesystemStore(rootDir string, logger zerolog.Logger) *FilesystemStore {
	return &FilesystemStore{
		rootDir: rootDir,
		logger:  logger,
	}
}

// Put writes data under rootDir/key, creating parent directories as
// needed.
func (fs *FilesystemStore) Put(ctx context.Context, key string, data []byte) error {
	fullPath := filepath.Join(fs.rootDir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		os.Remove(fullPath)
		return fmt.Errorf("write file: %w", err)
	}

	fs.logger.Debug().Str("path", fullPath).Msg("filesystem store: object written")
	return nil
}

// URL returns the local path of the stored object.
func (fs *FilesystemStore) URL(key string) string {
	return filepath.Join(fs.rootDir, filepath.FromSlash(key))
}
