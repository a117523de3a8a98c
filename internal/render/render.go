/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package render turns sampled scenarios into labeled training examples.
// Two interchangeable strategies cover the two supported output schemas.
package render

import (
	"github.com/friendsincode/sintesi/internal/scenario"
)

// Example is one labeled training row: the free-text utterance plus the
// structured fields it was generated from. The utterance is a pure function
// of the fields and the duration-mode flag; nothing in the text is absent
// from the label and vice versa.
type Example struct {
	Input  string
	Action scenario.Action // empty for strategies without an action column
	Asset  string
	Start  string
	End    string
}

// Field returns the value for a named output column.
func (e Example) Field(column string) string {
	switch column {
	case "Input":
		return e.Input
	case "Action":
		return string(e.Action)
	case "Asset":
		return e.Asset
	case "Start":
		return e.Start
	case "End":
		return e.End
	default:
		return ""
	}
}

// Strategy renders a scenario into an example. Implementations own the
// output schema: column set, phrasing and timestamp format belong to the
// strategy, not the caller.
type Strategy interface {
	// Name identifies the strategy in configuration and logs.
	Name() string
	// Columns returns the output columns in table order.
	Columns() []string
	// Render produces the labeled example for sc. asDuration selects
	// elapsed-length phrasing where the strategy supports it.
	Render(sc scenario.Scenario, asDuration bool) (Example, error)
}
