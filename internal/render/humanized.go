/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package render

import (
	"fmt"
	"time"

	"github.com/friendsincode/sintesi/internal/humanize"
	"github.com/friendsincode/sintesi/internal/scenario"
)

// HumanizedStrategy renders booking requests through the Italian range
// humanizer ("prenota sala riunioni domani dalle 14:00 per 2 ore"). The
// schema has no action column and stamps times as local second-precision
// ISO-8601.
type HumanizedStrategy struct {
	reference time.Time
}

// NewHumanizedStrategy creates a humanized strategy anchored at reference,
// which must match the sampler's reference date for day phrasing ("oggi",
// "tra 3 giorni") to line up with the sampled offsets.
func NewHumanizedStrategy(reference time.Time) *HumanizedStrategy {
	return &HumanizedStrategy{reference: scenario.Midnight(reference)}
}

func (*HumanizedStrategy) Name() string { return "humanized" }

func (*HumanizedStrategy) Columns() []string {
	return []string{"Input", "Asset", "Start", "End"}
}

func (h *HumanizedStrategy) Render(sc scenario.Scenario, asDuration bool) (Example, error) {
	phrase, err := humanize.Range(sc.Range.Start, sc.Range.End, h.reference, asDuration)
	if err != nil {
		return Example{}, fmt.Errorf("humanize range: %w", err)
	}

	return Example{
		Input: "prenota " + sc.Asset + " " + phrase,
		Asset: sc.Asset,
		Start: isoLocalSeconds(sc.Range.Start),
		End:   isoLocalSeconds(sc.Range.End),
	}, nil
}

func isoLocalSeconds(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}
