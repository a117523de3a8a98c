/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package scenario

import (
	"math/rand"
	"time"
)

// Start dates fall within this many days of the reference date.
const horizonDays = 90

// Profile bounds the sampled start times and durations. The two stock
// profiles correspond to the two rendering strategies.
type Profile struct {
	// Inclusive working-window bounds for the start hour.
	StartHourMin int
	StartHourMax int
	// Inclusive bounds for the whole-hour part of the duration.
	DurationHoursMin int
	DurationHoursMax int
	// When set, a quarter-hour tail of 15, 30 or 45 minutes is added to
	// the duration. This also keeps durations strictly positive when
	// DurationHoursMin is zero.
	QuarterTail bool
}

var (
	// ProfileTemplate matches the fixed-template renderer: broad working
	// day, whole-hour durations of 1 to 10 hours.
	ProfileTemplate = Profile{StartHourMin: 6, StartHourMax: 20, DurationHoursMin: 1, DurationHoursMax: 10}

	// ProfileHumanized matches the humanized renderer: office hours,
	// durations between 15 minutes and 4 hours 45 minutes.
	ProfileHumanized = Profile{StartHourMin: 8, StartHourMax: 20, DurationHoursMin: 0, DurationHoursMax: 4, QuarterTail: true}
)

// Sampler produces random scenarios from an explicit random source. The
// source is injected, never ambient process state, so independent samplers
// can run deterministically in the same process.
type Sampler struct {
	rng       *rand.Rand
	profile   Profile
	reference time.Time
}

// NewSampler creates a sampler drawing from rng. reference anchors the
// sampling horizon and is truncated to midnight.
func NewSampler(rng *rand.Rand, profile Profile, reference time.Time) *Sampler {
	return &Sampler{
		rng:       rng,
		profile:   profile,
		reference: Midnight(reference),
	}
}

// Reference returns the midnight-truncated reference date.
func (s *Sampler) Reference() time.Time {
	return s.reference
}

// Sample draws one scenario. Every draw is valid by construction; there is
// no rejection step and sampling cannot fail. Strategies that carry no
// action field simply ignore the sampled action.
func (s *Sampler) Sample() Scenario {
	action := Actions[s.rng.Intn(len(Actions))]
	asset := Assets[s.rng.Intn(len(Assets))]

	days := s.rng.Intn(horizonDays + 1)
	hour := s.profile.StartHourMin + s.rng.Intn(s.profile.StartHourMax-s.profile.StartHourMin+1)
	minute := 15 * s.rng.Intn(4)

	duration := time.Duration(s.profile.DurationHoursMin+s.rng.Intn(s.profile.DurationHoursMax-s.profile.DurationHoursMin+1)) * time.Hour
	if s.profile.QuarterTail {
		duration += time.Duration(15*(1+s.rng.Intn(3))) * time.Minute
	}

	start := s.reference.AddDate(0, 0, days).
		Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)

	return Scenario{
		Action: action,
		Asset:  asset,
		Range:  TimeRange{Start: start, End: start.Add(duration)},
	}
}

// Midnight truncates t to the start of its civil day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
