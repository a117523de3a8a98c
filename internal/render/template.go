/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package render

import (
	"fmt"
	"time"

	"github.com/friendsincode/sintesi/internal/scenario"
)

// TemplateStrategy renders one fixed Italian sentence per action with the
// raw calendar date and clock times spelled out. It carries the action in
// the label and stamps times as millisecond-precision UTC ISO-8601.
type TemplateStrategy struct{}

// NewTemplateStrategy creates the fixed-template strategy.
func NewTemplateStrategy() TemplateStrategy {
	return TemplateStrategy{}
}

func (TemplateStrategy) Name() string { return "template" }

func (TemplateStrategy) Columns() []string {
	return []string{"Input", "Action", "Asset", "Start", "End"}
}

// Render ignores asDuration: the fixed templates always phrase the absolute
// end clock time.
func (TemplateStrategy) Render(sc scenario.Scenario, _ bool) (Example, error) {
	day := sc.Range.Start.Format("02/01/2006")
	from := sc.Range.Start.Format("15:04")
	to := sc.Range.End.Format("15:04")

	var input string
	switch sc.Action {
	case scenario.ActionBook:
		input = fmt.Sprintf("Prenota %s per il giorno %s dalle %s alle %s", sc.Asset, day, from, to)
	case scenario.ActionCancel:
		input = fmt.Sprintf("Cancella la prenotazione di %s per il giorno %s dalle %s alle %s", sc.Asset, day, from, to)
	default:
		input = fmt.Sprintf("Modifica la prenotazione di %s al giorno %s dalle %s alle %s", sc.Asset, day, from, to)
	}

	return Example{
		Input:  input,
		Action: sc.Action,
		Asset:  sc.Asset,
		Start:  isoUTCMillis(sc.Range.Start),
		End:    isoUTCMillis(sc.Range.End),
	}, nil
}

// isoUTCMillis stamps a civil instant as UTC with millisecond precision
// and a trailing Z. The instant is relabeled, not converted: sampled times
// are timezone-naive by construction.
func isoUTCMillis(t time.Time) string {
	return t.Format("2006-01-02T15:04:05.000") + "Z"
}
