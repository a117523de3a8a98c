/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package dataset

import (
	"errors"
	"testing"
)

func TestPlanConservesTotal(t *testing.T) {
	cases := []struct {
		total         int
		testPct       float64
		validationPct float64
		want          Counts
	}{
		{2000, 0.15, 0.15, Counts{Train: 1400, Test: 300, Validation: 300}},
		{10, 0.33, 0.33, Counts{Train: 4, Test: 3, Validation: 3}},
		{7, 0.5, 0.25, Counts{Train: 3, Test: 3, Validation: 1}},
		{100, 0, 0, Counts{Train: 100}},
		{0, 0.2, 0.2, Counts{}},
		{1, 0.99, 0, Counts{Train: 1}},
	}

	for _, tc := range cases {
		got, err := Plan(tc.total, tc.testPct, tc.validationPct)
		if err != nil {
			t.Fatalf("Plan(%d, %v, %v): %v", tc.total, tc.testPct, tc.validationPct, err)
		}
		if got != tc.want {
			t.Fatalf("Plan(%d, %v, %v) = %+v, want %+v", tc.total, tc.testPct, tc.validationPct, got, tc.want)
		}
		if got.Total() != tc.total {
			t.Fatalf("counts %+v do not sum to %d", got, tc.total)
		}
	}
}

func TestPlanRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		total         int
		testPct       float64
		validationPct float64
	}{
		{-1, 0.1, 0.1},
		{100, -0.1, 0},
		{100, 0, 1.5},
		{100, 0.8, 0.8}, // implied train count negative
	}

	for _, tc := range cases {
		if _, err := Plan(tc.total, tc.testPct, tc.validationPct); !errors.Is(err, ErrInvalidSplit) {
			t.Fatalf("Plan(%d, %v, %v): expected ErrInvalidSplit, got %v", tc.total, tc.testPct, tc.validationPct, err)
		}
	}
}
