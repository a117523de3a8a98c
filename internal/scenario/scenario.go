/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package scenario defines the booking-intent domain values and the seeded
// sampler that produces random, internally consistent scenarios.
package scenario

import "time"

// Action enumerates the booking operations the assistant understands.
// Values are the Italian imperative verbs used in the output labels.
type Action string

const (
	ActionBook   Action = "prenota"
	ActionCancel Action = "cancella"
	ActionModify Action = "modifica"
)

// Actions lists all actions in sampling order.
var Actions = []Action{ActionBook, ActionCancel, ActionModify}

// Assets is the closed catalog of bookable resources. Constant data, not
// derived from anything.
var Assets = []string{
	"sala riunioni",
	"auditorium",
	"sala meeting",
	"ufficio A",
	"ufficio B",
	"desk 18",
	"desk 40",
}

// TimeRange is a half-open booking window. Invariant: End is strictly
// after Start. Instants are timezone-naive civil times carried in UTC.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Duration returns the length of the range.
func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Scenario is one sampled action/asset/time-range tuple. It is a transient
// value: rendered into a labeled example and discarded.
type Scenario struct {
	Action Action
	Asset  string
	Range  TimeRange
}
