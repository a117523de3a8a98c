/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package dataset plans split sizes and orchestrates dataset builds: it
// owns the output directory lifecycle and writes one labeled table per
// split.
package dataset

import (
	"errors"
	"fmt"
)

// ErrInvalidSplit is returned when split percentages cannot yield
// non-negative counts.
var ErrInvalidSplit = errors.New("dataset: invalid split percentages")

// Counts holds the planned number of examples per split. The three counts
// always sum to the requested total.
type Counts struct {
	Train      int
	Test       int
	Validation int
}

// Total returns the sum of the three split counts.
func (c Counts) Total() int {
	return c.Train + c.Test + c.Validation
}

// Plan computes per-split counts. Test and validation take the floor of
// their percentage of total; train takes the remainder, so the counts
// conserve the total exactly.
func Plan(total int, testPct, validationPct float64) (Counts, error) {
	if total < 0 {
		return Counts{}, fmt.Errorf("%w: total %d is negative", ErrInvalidSplit, total)
	}
	if testPct < 0 || testPct > 1 || validationPct < 0 || validationPct > 1 {
		return Counts{}, fmt.Errorf("%w: percentages %.3f/%.3f outside [0,1]", ErrInvalidSplit, testPct, validationPct)
	}

	test := int(float64(total) * testPct)
	validation := int(float64(total) * validationPct)
	train := total - test - validation
	if train < 0 {
		return Counts{}, fmt.Errorf("%w: implied train count %d is negative", ErrInvalidSplit, train)
	}

	return Counts{Train: train, Test: test, Validation: validation}, nil
}
