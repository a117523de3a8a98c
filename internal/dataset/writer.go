/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package dataset

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/friendsincode/sintesi/internal/render"
)

// writeTable writes one CSV table (header plus one row per example) and
// returns the hex SHA-256 of its content. The write is atomic: rows go to
// a temp file in the destination directory which is fsynced and renamed
// into place, so a failed build never leaves a truncated table behind.
func writeTable(path string, columns []string, examples []render.Example) (string, error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return "", fmt.Errorf("create temp table: %w", err)
	}
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	hash := sha256.New()
	w := csv.NewWriter(io.MultiWriter(tmp, hash))

	if err := w.Write(columns); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(columns))
	for _, ex := range examples {
		for i, col := range columns {
			row[i] = ex.Field(col)
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush table: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return "", fmt.Errorf("sync table: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close table: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		tmp = nil
		return "", fmt.Errorf("rename table into place: %w", err)
	}
	tmp = nil

	return hex.EncodeToString(hash.Sum(nil)), nil
}
